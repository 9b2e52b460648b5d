package main

import (
	"github.com/mrhapile/fish-health-diagnoser/pkg/training"
	"github.com/spf13/cobra"
)

func newTrainCmd(a *app) *cobra.Command {
	var (
		output  string
		samples int
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit the offline classifier on synthetic data",
		Long: `Generates labelled synthetic symptom data, fits a naive Bayes
classifier, prints a classification report and writes the model and its
metadata to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Training
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = output
			}
			if cmd.Flags().Changed("samples") {
				cfg.Samples = samples
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			_, err := training.NewTrainer(cfg, a.log, cmd.OutOrStdout()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "directory for the model artifact")
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of synthetic samples")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	return cmd
}
