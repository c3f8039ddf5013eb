// Command centavo is a small operational CLI around the gateway client:
// inspect charges and loyalty balances from a terminal using credentials
// taken from the environment.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	centavo "github.com/centavopay/centavo-go"
	"github.com/centavopay/centavo-go/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	client, err := cfg.NewClient(logger)
	if err != nil {
		logger.Error("failed to construct client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "charges":
		runCharges(ctx, client, os.Args[2:], logger)
	case "points":
		runPoints(ctx, client, os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}
}

func runCharges(ctx context.Context, client *centavo.Client, args []string, logger *slog.Logger) {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			usage()
			os.Exit(2)
		}
		charge, err := client.Charges.Get(ctx, args[1])
		if err != nil {
			logger.Error("get charge failed", "charge_id", args[1], "error", err)
			os.Exit(1)
		}
		printJSON(charge)

	case "list":
		fs := flag.NewFlagSet("charges list", flag.ExitOnError)
		orderID := fs.String("order-id", "", "filter by order id")
		status := fs.String("status", "", "filter by charge status")
		gte := fs.String("gte", "", "inclusive creation lower bound (YYYY-MM-DD)")
		lte := fs.String("lte", "", "inclusive creation upper bound (YYYY-MM-DD)")
		limit := fs.Int("limit", 0, "page size")
		offset := fs.Int("offset", 0, "page offset")
		fs.Parse(args[1:])

		params := &centavo.SearchParams{
			OrderID: *orderID,
			Status:  centavo.ChargeStatus(*status),
			Offset:  *offset,
			Limit:   *limit,
		}
		if *gte != "" {
			t, err := time.Parse("2006-01-02", *gte)
			if err != nil {
				logger.Error("invalid -gte date", "error", err)
				os.Exit(2)
			}
			params.CreationGte = t
		}
		if *lte != "" {
			t, err := time.Parse("2006-01-02", *lte)
			if err != nil {
				logger.Error("invalid -lte date", "error", err)
				os.Exit(2)
			}
			params.CreationLte = t
		}

		charges, err := client.Charges.List(ctx, params)
		if err != nil {
			logger.Error("list charges failed", "error", err)
			os.Exit(1)
		}
		printJSON(charges)

	default:
		usage()
		os.Exit(2)
	}
}

func runPoints(ctx context.Context, client *centavo.Client, args []string, logger *slog.Logger) {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}

	balance, err := client.Cards.Points(ctx, args[0], args[1])
	if err != nil {
		logger.Error("points lookup failed", "customer_id", args[0], "card_id", args[1], "error", err)
		os.Exit(1)
	}
	printJSON(balance)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("failed to render result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  centavo charges get <charge-id>
  centavo charges list [-order-id ID] [-status S] [-gte YYYY-MM-DD] [-lte YYYY-MM-DD] [-limit N] [-offset N]
  centavo points <customer-id> <card-id>`)
}
