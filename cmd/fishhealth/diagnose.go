package main

import (
	"fmt"
	"strings"

	"github.com/mrhapile/fish-health-diagnoser/pkg/engine"
	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDiagnoseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnose [symptom...]",
		Short: "Diagnose the given symptoms without starting the server",
		Example: `  fishhealth diagnose whiteSpots lossOfAppetite
  fishhealth diagnose bloating,lethargy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			obs := types.Observation{}
			for _, arg := range args {
				for _, name := range strings.Split(arg, ",") {
					name = strings.TrimSpace(name)
					if name == "" {
						continue
					}
					if !types.Symptom(name).Known() {
						a.log.Warn("ignoring unrecognized symptom", zap.String("symptom", name))
						continue
					}
					obs[name] = true
				}
			}

			result, err := engine.NewDefault().Predict(obs)
			if err != nil {
				a.log.Warn("prediction degraded to fallback", zap.Error(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Disease:    %s\n", result.Disease)
			fmt.Fprintf(out, "Confidence: %.2f\n", result.Confidence)
			if result.Emergency {
				fmt.Fprintln(out, "Emergency:  yes")
			}
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"#", "Recommendation"})
			table.SetAutoWrapText(false)
			for i, rec := range result.Recommendations {
				table.Append([]string{fmt.Sprintf("%d", i+1), rec})
			}
			table.Render()
			return nil
		},
	}
	return cmd
}
