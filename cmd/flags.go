package cmd

import (
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringP("port", "p", "8080", "port on which the http server listens")
	rootCmd.PersistentFlags().StringP("env", "e", constants.Prod, "environment: dev, stage or prod")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logs")
	rootCmd.PersistentFlags().String("logFile", "", "directory for the log file")
}
