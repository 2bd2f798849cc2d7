package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"articraft/internal/catalog"
	"articraft/internal/config"
)

var (
	cfg      config.Config
	useMock  bool
	limit    int
	noColors bool
)

var rootCmd = &cobra.Command{
	Use:   "articraft",
	Short: "Search Artifact cards and show them in a normalized form",
	Long: `articraft queries the Articraft card search API and reshapes the results
into a flat card record: color, resolved type, rarity, stats, signature
spell and abilities.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if useMock {
			cfg.CardProvider = "mock"
		}
		if limit < 1 {
			limit = cfg.SearchLimit
		}
		if noColors || cfg.NoColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "Use the built-in offline fixture instead of the API")
	rootCmd.PersistentFlags().IntVarP(&limit, "limit", "n", 0, "Maximum number of cards (default from config, 5)")
	rootCmd.PersistentFlags().BoolVar(&noColors, "no-color", false, "Disable colored output")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	must(rootCmd.ExecuteContext(ctx))
}

func newProvider() (catalog.Provider, error) {
	return catalog.NewProvider(cfg)
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(exitCode(err))
}

// exitCode is 2 when the upstream API failed or returned an unusable card,
// 1 for everything else.
func exitCode(err error) int {
	var fieldErr *catalog.FieldMissingError
	var transportErr *catalog.TransportError
	if errors.As(err, &fieldErr) || errors.As(err, &transportErr) {
		return 2
	}
	return 1
}
