package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"articraft/internal/catalog"
	"articraft/internal/display"
	"articraft/internal/storage"
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage the local card collection",
	Long:  `Commands for keeping normalized cards in a local SQLite collection.`,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add [partial_name]",
	Short: "Search and add the results to the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		count, err := catalog.NewCollectionService(db, provider).AddFromSearch(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		fmt.Printf("added %d cards to %s\n", count, cfg.DBPath)
		return nil
	},
}

var collectionListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cards in the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		cards, err := db.ListCards()
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println("Your collection is empty.")
			fmt.Println("Run 'articraft collection add <name>' to add cards.")
			return nil
		}
		for _, c := range cards {
			fmt.Printf("  %-28s %-12s %-10s %s\n", c.Name, c.Type, c.Color, c.Rarity)
		}

		last, err := catalog.NewCollectionService(db, nil).LastAdd()
		if err == nil && last != nil {
			fmt.Printf("\n%d cards, last added %s\n", len(cards), last.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var collectionShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a card from the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		c, err := db.GetCard(args[0])
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("card not found in collection: %s", args[0])
		}
		display.RenderCard(os.Stdout, *c, display.TerminalWidth())
		return nil
	},
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Remove a card from the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		removed, err := db.DeleteCard(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("card not found in collection: %s", args[0])
		}
		fmt.Printf("removed %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionShowCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
}
