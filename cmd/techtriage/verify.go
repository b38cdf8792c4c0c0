package main

import (
	"github.com/spf13/cobra"

	"github.com/mrhapile/techtriage/pkg/engine"
)

var (
	verifyDevice string
	verifyFacts  []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <hypothesis>",
	Short: "Check whether a hypothesized cause is supported by known facts",
	Example: `  techtriage verify "Dust accumulation" --device computer \
      --fact fan_noise=yes --fact hot_surface=true`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDevice, "device", "", "restrict to a device type")
	verifyCmd.Flags().StringArrayVar(&verifyFacts, "fact", nil, "known fact as key=value (repeatable)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	facts, err := parseFacts(verifyFacts)
	if err != nil {
		return err
	}

	eng := engine.New(store, engine.WithLogger(logger))
	eng.AddFacts(facts)
	verification := eng.Verify(args[0], verifyDevice)

	if verification.Proven {
		cmd.Println(goodStyle.Render("PROVEN: " + args[0]))
		return nil
	}
	cmd.Println(warnStyle.Render("NOT PROVEN: " + args[0]))
	for _, missing := range verification.MissingFacts {
		cmd.Println(bulletStyle.Render("- " + missing))
	}
	return nil
}
