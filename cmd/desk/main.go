package main

import (
	"basketdesk/api"
	"basketdesk/cmd"
	"basketdesk/internal"
	"basketdesk/internal/domain"
	"basketdesk/internal/service"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// demoUniverseCsv is the three-asset starter universe: broad equity, core
// bonds and gold. Enough to exercise every engine end to end.
const demoUniverseCsv = `instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes
US-EQ-SPY,SPY,SPDR S&P 500 ETF Trust,Equity,US,USD,true,US78462F1030,,,broad US equity
US-RATES-AGG,AGG,iShares Core US Aggregate Bond ETF,Rates,US,USD,true,US4642872265,,,core bonds
GLB-COMM-GLD,GLD,SPDR Gold Shares,Commodities,Global,USD,true,US78463V1070,,,gold
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "desk",
		Short: "basketdesk operations CLI",
	}
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(syncPricesCmd())
	rootCmd.AddCommand(syncMacroCmd())
	rootCmd.AddCommand(scoresCmd())
	rootCmd.AddCommand(suggestCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func mustInitialize() *api.ApiHandler {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	return handler
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "import the demo universe and commit a starter basket",
		RunE: func(c *cobra.Command, args []string) error {
			handler := mustInitialize()
			defer cmd.CloseDependencies(handler)
			ctx := context.Background()

			note := "demo seed"
			snapshot, err := handler.UniverseService.ImportUniverse(
				ctx, strings.NewReader(demoUniverseCsv), "seed", &note,
			)
			if err != nil {
				return err
			}
			fmt.Printf("imported snapshot %s (%d instruments)\n", snapshot.SnapshotID, len(snapshot.Instruments))

			basket, err := handler.BasketService.CreateBasket(ctx, service.CreateBasketInput{
				SnapshotID:  snapshot.SnapshotID,
				Name:        "Demo 60/30/10",
				Description: &note,
			})
			if err != nil {
				return err
			}

			version, err := handler.BasketService.Commit(ctx, service.CommitInput{
				BasketID: basket.BasketID,
				Holdings: []domain.Holding{
					{InstrumentID: "US-EQ-SPY", Weight: decimal.RequireFromString("0.6")},
					{InstrumentID: "US-RATES-AGG", Weight: decimal.RequireFromString("0.3")},
					{InstrumentID: "GLB-COMM-GLD", Weight: decimal.RequireFromString("0.1")},
				},
				Note:        &note,
				BaseVersion: 0,
			})
			if err != nil {
				return err
			}
			fmt.Printf("committed basket %s version %d\n", basket.BasketID, version.VersionNumber)

			return nil
		},
	}
}

func syncPricesCmd() *cobra.Command {
	var snapshotID string
	c := &cobra.Command{
		Use:   "sync-prices",
		Short: "pull adjusted close history for a snapshot's instruments",
		RunE: func(c *cobra.Command, args []string) error {
			handler := mustInitialize()
			defer cmd.CloseDependencies(handler)

			id, err := uuid.Parse(snapshotID)
			if err != nil {
				return fmt.Errorf("invalid snapshot id: %w", err)
			}
			result, err := handler.PriceService.SyncSnapshotPrices(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("synced %d symbols, skipped %v\n", result.Synced, result.Skipped)
			return nil
		},
	}
	c.Flags().StringVar(&snapshotID, "snapshot", "", "universe snapshot id")
	c.MarkFlagRequired("snapshot")
	return c
}

func syncMacroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-macro [series...]",
		Short: "pull FRED macro series (defaults to the standard regime set)",
		RunE: func(c *cobra.Command, args []string) error {
			handler := mustInitialize()
			defer cmd.CloseDependencies(handler)

			result, err := handler.PriceService.SyncMacro(context.Background(), args)
			if err != nil {
				return err
			}
			fmt.Printf("synced %d series, skipped %v\n", result.Synced, result.Skipped)
			return nil
		},
	}
}

func scoresCmd() *cobra.Command {
	var snapshotID string
	var asOfArg string
	c := &cobra.Command{
		Use:   "scores",
		Short: "compute signal scores for a snapshot",
		RunE: func(c *cobra.Command, args []string) error {
			handler := mustInitialize()
			defer cmd.CloseDependencies(handler)

			id, err := uuid.Parse(snapshotID)
			if err != nil {
				return fmt.Errorf("invalid snapshot id: %w", err)
			}
			asOf := time.Now().UTC()
			if asOfArg != "" {
				asOf, err = time.Parse(time.DateOnly, asOfArg)
				if err != nil {
					return fmt.Errorf("invalid as-of date: %w", err)
				}
			}

			scores, err := handler.SignalService.ComputeScores(context.Background(), id, asOf)
			if err != nil {
				return err
			}
			internal.Pprint(scores)
			return nil
		},
	}
	c.Flags().StringVar(&snapshotID, "snapshot", "", "universe snapshot id")
	c.Flags().StringVar(&asOfArg, "as-of", "", "scoring date (YYYY-MM-DD, default today)")
	c.MarkFlagRequired("snapshot")
	return c
}

func suggestCmd() *cobra.Command {
	var basketID string
	c := &cobra.Command{
		Use:   "suggest",
		Short: "generate ranked edits for a basket's latest version",
		RunE: func(c *cobra.Command, args []string) error {
			handler := mustInitialize()
			defer cmd.CloseDependencies(handler)

			id, err := uuid.Parse(basketID)
			if err != nil {
				return fmt.Errorf("invalid basket id: %w", err)
			}
			suggestion, err := handler.BasketService.Suggest(context.Background(), id, time.Now().UTC())
			if err != nil {
				return err
			}
			internal.Pprint(suggestion)
			return nil
		},
	}
	c.Flags().StringVar(&basketID, "basket", "", "basket id")
	c.MarkFlagRequired("basket")
	return c
}
