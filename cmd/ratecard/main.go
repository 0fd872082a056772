// Command ratecard prints the shipping rate card and, optionally, a fee quote.
//
//	ratecard -method Express -subtotal 1200 -items 3 -region Mombasa
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/config"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/infrastructure/database"
	"github.com/sangkips/backoffice-api/internal/infrastructure/repository"
	"github.com/sangkips/backoffice-api/pkg/logging"
	"github.com/shopspring/decimal"
)

func main() {
	method := flag.String("method", "", "shipping method to quote (empty for Standard)")
	subtotal := flag.String("subtotal", "", "order subtotal to quote")
	items := flag.Int("items", 1, "number of items to quote")
	region := flag.String("region", "", "delivery region to quote")
	flag.Parse()

	if err := run(os.Stdout, *method, *subtotal, *items, *region); err != nil {
		fmt.Fprintln(os.Stderr, "ratecard:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, method, subtotal string, items int, region string) error {
	cfg := config.Load()
	logger := logging.New(logging.Config{
		Level:       "warn",
		ServiceName: "ratecard",
		Environment: cfg.App.Env,
		Output:      os.Stderr,
	})

	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx := context.Background()
	shipping := service.NewShippingService(repository.NewShippingRepository(db), cfg.Shipping, nil)

	rules, err := shipping.ListRules(ctx)
	if err != nil {
		return err
	}
	surcharges, err := shipping.ListSurcharges(ctx)
	if err != nil {
		return err
	}

	var quote *service.FeeQuote
	if subtotal != "" || region != "" || method != "" {
		amount, err := decimal.NewFromString(subtotal)
		if err != nil {
			amount = decimal.Zero
		}
		quote, err = shipping.Quote(ctx, service.FeeInput{
			Method:    method,
			Subtotal:  amount,
			ItemCount: items,
			Region:    region,
		})
		if err != nil {
			return err
		}
	}

	return printRateCard(w, rules, surcharges, quote)
}

func printRateCard(w io.Writer, rules []entity.ShippingRule, surcharges []entity.RegionSurcharge, quote *service.FeeQuote) error {
	fmt.Fprintln(w, "Shipping rules")
	table := tablewriter.NewWriter(w)
	table.Header("Method", "Base fee", "Per extra item", "Free from", "Active")
	for _, r := range rules {
		threshold := "-"
		if r.FreeShippingThreshold.Valid {
			threshold = r.FreeShippingThreshold.Decimal.StringFixed(2)
		}
		if err := table.Append(r.Method, r.BaseFee.StringFixed(2), r.PerItemFee.StringFixed(2), threshold, strconv.FormatBool(r.Active)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRegion surcharges")
	table = tablewriter.NewWriter(w)
	table.Header("Region", "Fee", "Active")
	for _, s := range surcharges {
		if err := table.Append(s.Region, s.Fee.StringFixed(2), strconv.FormatBool(s.Active)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if quote == nil {
		return nil
	}

	fmt.Fprintln(w, "\nQuote")
	table = tablewriter.NewWriter(w)
	table.Header("Method", "Region", "Base", "Items", "Surcharge", "Free", "Fee")
	if err := table.Append(
		quote.Method,
		quote.Region,
		quote.BaseFee.StringFixed(2),
		quote.ItemFee.StringFixed(2),
		quote.Surcharge.StringFixed(2),
		strconv.FormatBool(quote.FreeShipping),
		quote.Fee.StringFixed(2),
	); err != nil {
		return err
	}
	return table.Render()
}
