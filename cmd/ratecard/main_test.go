package main

import (
	"bytes"
	"testing"

	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRateCard(t *testing.T) {
	rules := []entity.ShippingRule{
		{Method: "Standard", BaseFee: decimal.NewFromInt(200), PerItemFee: decimal.NewFromInt(50), FreeShippingThreshold: decimal.NewNullDecimal(decimal.NewFromInt(5000)), Active: true},
		{Method: "Express", BaseFee: decimal.NewFromInt(500), PerItemFee: decimal.NewFromInt(100), Active: true},
	}
	surcharges := []entity.RegionSurcharge{
		{Region: "Mombasa", Fee: decimal.NewFromInt(150), Active: true},
	}

	var buf bytes.Buffer
	require.NoError(t, printRateCard(&buf, rules, surcharges, nil))

	out := buf.String()
	assert.Contains(t, out, "Standard")
	assert.Contains(t, out, "5000.00")
	assert.Contains(t, out, "Mombasa")
	assert.NotContains(t, out, "Quote")

	quote := service.CalculateFee(service.NewRateTable(rules, surcharges, rules[0]), service.FeeInput{
		Method:    "Express",
		Subtotal:  decimal.NewFromInt(1200),
		ItemCount: 3,
		Region:    "mombasa",
	})

	buf.Reset()
	require.NoError(t, printRateCard(&buf, rules, surcharges, &quote))
	assert.Contains(t, buf.String(), "Quote")
	assert.Contains(t, buf.String(), "850.00")
}
