// Package cmd contains the predeval command line interface.
package cmd

import "github.com/spf13/cobra"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "predeval",
	Short: "Prediction accuracy evaluation",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
