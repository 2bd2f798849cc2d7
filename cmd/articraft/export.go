package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"articraft/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [partial_name]",
	Short: "Export search results to an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		cards, err := provider.SearchCards(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = filepath.Join(cfg.OutputDir, "cards.xlsx")
		}
		if err := export.CardsToXLSX(cards, out); err != nil {
			return err
		}
		fmt.Printf("exported %d cards to %s\n", len(cards), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output xlsx path (default <output_dir>/cards.xlsx)")
}
