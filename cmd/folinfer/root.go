package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "folinfer",
	Short: "Resolve FOL Horn-clause queries against a knowledge base read from a batch file",
	RunE:  runE,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.Flags().StringP("input", "i", "input.txt", "path to the batch input file")
	rootCmd.Flags().StringP("output", "o", "output.txt", "path to write TRUE/FALSE verdicts to")
	rootCmd.Flags().BoolP("verbose", "v", false, "log one entry per processed sentence and query")
}

// Execute runs the root command, logging (rather than printing) any
// top-level failure before returning it to main for the exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("folinfer failed")
		return err
	}
	return nil
}
