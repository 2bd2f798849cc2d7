package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"articraft/internal/display"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [partial_name]",
	Short: "Search cards by partial name",
	Long: `Search asks the card API for cards whose name contains the given text
and prints up to --limit normalized cards.

Examples:
  articraft search axe
  articraft search --limit 10 --json "storm"
  articraft search --mock anything`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		cards, err := provider.SearchCards(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}

		if searchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cards)
		}
		display.RenderCards(os.Stdout, cards, display.TerminalWidth())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print normalized cards as JSON")
}
