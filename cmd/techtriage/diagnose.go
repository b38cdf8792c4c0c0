package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrhapile/techtriage/pkg/classify"
	"github.com/mrhapile/techtriage/pkg/engine"
	"github.com/mrhapile/techtriage/pkg/types"
)

var (
	diagDevice   string
	diagCategory string
	diagText     string
	diagSymptoms []string
	diagJSON     bool
	diagTrace    bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run a one-shot diagnosis from known symptoms",
	Example: `  techtriage diagnose --device computer --category overheating \
      --symptom fan_noise=yes --symptom hot_surface=true
  techtriage diagnose --device mobile --text "battery drains fast" \
      --symptom battery_drain=fast`,
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVar(&diagDevice, "device", "", "device type: computer or mobile")
	diagnoseCmd.Flags().StringVar(&diagCategory, "category", "", "problem category (skips text classification)")
	diagnoseCmd.Flags().StringVar(&diagText, "text", "", "free-text problem description to classify")
	diagnoseCmd.Flags().StringArrayVar(&diagSymptoms, "symptom", nil, "symptom fact as key=value (repeatable)")
	diagnoseCmd.Flags().BoolVar(&diagJSON, "json", false, "emit the raw DiagnosisResult as JSON")
	diagnoseCmd.Flags().BoolVar(&diagTrace, "trace", false, "print the inference trace")
	_ = diagnoseCmd.MarkFlagRequired("device")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	category := diagCategory
	if category == "" {
		if diagText == "" {
			return errors.New("either --category or --text is required")
		}
		pred := classify.New().Classify(diagText)
		category = pred.Category
		logger.Debug("classified problem text",
			zap.String("category", pred.Category),
			zap.Float64("confidence", pred.Confidence))
	}

	facts, err := parseFacts(diagSymptoms)
	if err != nil {
		return err
	}

	eng := engine.New(store, engine.WithLogger(logger))
	result := eng.Diagnose(diagDevice, category, facts)

	if diagJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Print(renderResult(result, cfg.Language))
	if diagTrace {
		cmd.Println(faintStyle.Render(strings.Join(result.Trace, "\n")))
	}
	return nil
}

// parseFacts turns repeated key=value flags into a fact set. Bare "true"
// and "false" become booleans; everything else stays a string and the
// matcher's token mapping takes care of yes/no answers.
func parseFacts(pairs []string) (types.Facts, error) {
	facts := make(types.Facts, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid symptom %q, expected key=value", pair)
		}
		switch value {
		case "true":
			facts[key] = types.BoolValue(true)
		case "false":
			facts[key] = types.BoolValue(false)
		default:
			facts[key] = types.StringValue(value)
		}
	}
	return facts, nil
}
