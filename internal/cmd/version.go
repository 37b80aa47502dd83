package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/version"
)

var versionLong bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		if versionLong {
			out, _ := json.MarshalIndent(info, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), info.Version)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionLong, "long", false, "Print detailed version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
