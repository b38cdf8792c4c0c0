package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	rulesDevice   string
	rulesCategory string
	rulesSymptoms bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the loaded rule catalog",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesDevice, "device", "", "filter by device type")
	rulesCmd.Flags().StringVar(&rulesCategory, "category", "", "filter by problem category")
	rulesCmd.Flags().BoolVar(&rulesSymptoms, "symptoms", false, "list symptom keys instead of rules (requires --category)")
}

func runRules(cmd *cobra.Command, args []string) error {
	if rulesSymptoms {
		if rulesCategory == "" {
			return fmt.Errorf("--symptoms requires --category")
		}
		for _, key := range store.SymptomKeys(rulesCategory, rulesDevice) {
			cmd.Println(key)
		}
		return nil
	}

	if rulesCategory == "" && rulesDevice == "" {
		cmd.Println(titleStyle.Render("Categories"))
		for _, category := range store.Categories() {
			cmd.Println(bulletStyle.Render("- " + category))
		}
		cmd.Println(faintStyle.Render("\nUse --category or --device to list rules."))
		return nil
	}

	rules := store.ByCategory(rulesCategory, rulesDevice)
	if rulesCategory == "" {
		rules = store.ByDevice(rulesDevice)
	}
	for _, r := range rules {
		cmd.Printf("%s  %.2f  %s\n", r.ID, r.Confidence, r.Cause)
		cmd.Println(faintStyle.Render("      conditions: " + strings.Join(r.Conditions.Keys(), ", ")))
	}
	return nil
}
