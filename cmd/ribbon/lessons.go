package main

import (
	"fmt"

	"github.com/aretw0/ribbon/internal/presentation/tui"
	"github.com/aretw0/ribbon/pkg/examples"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons [id]",
	Short: "Read the built-in Turing machine lessons",
	Long:  `Renders the bundled lesson deck in the terminal. Without an argument the whole deck is shown in order.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		render := tui.NewMarkdownRenderer()

		deck := examples.Lessons()
		if len(args) > 0 {
			found := false
			for _, lesson := range deck {
				if lesson.ID == args[0] {
					deck = []examples.Lesson{lesson}
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown lesson %q", args[0])
			}
		}

		for _, lesson := range deck {
			body, err := render(lesson.Body)
			if err != nil {
				return err
			}
			fmt.Print(body)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lessonsCmd)
}
