package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ribbon/pkg/examples"
	"github.com/aretw0/ribbon/pkg/schema"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the bundled example programs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, ex := range examples.List() {
			fmt.Printf("  %-18s %s (input: %q)\n", ex.ID, ex.Description, ex.DefaultInput)
		}
		fmt.Println("\nUse 'ribbon examples show <id>' to print a definition, or 'ribbon run -e <id>' to run one.")
	},
}

var examplesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an example's machine definition as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ex, ok := examples.Get(args[0])
		if !ok {
			fmt.Printf("Error: unknown example %q. Run 'ribbon examples' to list them.\n", args[0])
			os.Exit(1)
		}
		data, err := schema.ToYAML(ex.Definition)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("# %s: %s\n", ex.Name, ex.Goal)
		fmt.Print(string(data))
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
	examplesCmd.AddCommand(examplesShowCmd)
}
