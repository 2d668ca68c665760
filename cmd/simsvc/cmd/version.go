package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // set at build time with -ldflags "-X herobattle/cmd/simsvc/cmd.version=..."

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the simsvc version",
	// version needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "simsvc v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
