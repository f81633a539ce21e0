package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/ribbon"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ribbon",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ribbon version %s\n", strings.TrimSpace(ribbon.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
