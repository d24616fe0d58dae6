package main

import (
	"github.com/spf13/cobra"
)

const app = "interview-iq"

var (
	debugFlag bool
	jsonFlag  bool

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "interview-iq generates interview questions and scores answers with an LLM",
		SilenceUsage: true,
		RunE:         runServe,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonFlag, "json", "j", false, "json format for logging")
}
