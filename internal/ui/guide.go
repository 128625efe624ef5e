package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/huddle/internal/bot"
)

func (a *App) guideCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Aliases: []string{"format"},
		Short:   "Explain the message format",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), bot.HelpText)
		},
	}
}

func (a *App) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "example",
		Aliases: []string{"eg"},
		Short:   "Print a sample message",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), bot.ExampleText)
		},
	}
}
