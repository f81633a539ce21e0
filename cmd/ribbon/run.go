package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ribbon/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [definition-file]",
	Short: "Run a Turing machine program",
	Long:  `Loads a machine definition (YAML or JSON file, or a bundled example) and runs it, either interactively or straight to a halt.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		if len(args) > 0 {
			opts.ProgramPath = args[0]
		}
		opts.Example, _ = cmd.Flags().GetString("example")
		opts.Tape, _ = cmd.Flags().GetString("tape")
		opts.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		if opts.ProgramPath == "" && opts.Example == "" {
			fmt.Println("Error: provide a definition file or --example <id>.")
			os.Exit(1)
		}
		if opts.ProgramPath != "" && opts.Example != "" {
			fmt.Println("Error: a definition file and --example cannot be used together.")
			os.Exit(1)
		}

		if err := cli.Run(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("example", "e", "", "Run a bundled example program by ID")
	runCmd.Flags().StringP("tape", "t", "", "Initial tape contents")
	runCmd.Flags().Int("max-steps", 0, "Step budget for run (0 uses the default)")
	runCmd.Flags().Bool("headless", false, "Run to a halt without the interactive prompt")
	runCmd.Flags().Bool("json", false, "Print the headless result as JSON")
}
