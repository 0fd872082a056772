package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sangkips/backoffice-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingQuote_UsesConfiguredFallbackOnEmptyTable(t *testing.T) {
	s := newTestServices(t)

	quote, err := s.shipping.Quote(context.Background(), FeeInput{Method: "Standard", Subtotal: money("6000"), ItemCount: 3, Region: "Unmapped"})
	require.NoError(t, err)
	assert.True(t, quote.Fee.IsZero())
	assert.True(t, quote.FreeShipping)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ShippingQuotes.WithLabelValues("Standard", "true")))
}

func TestShippingQuote_ReadsRulesAndSurcharges(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.shipping.UpsertRule(ctx, &UpsertRuleInput{Method: "Express", BaseFee: money("500"), PerItemFee: money("100"), Active: true})
	require.NoError(t, err)
	_, err = s.shipping.UpsertSurcharge(ctx, &UpsertSurchargeInput{Region: "Kisumu", Fee: money("150"), Active: true})
	require.NoError(t, err)

	quote, err := s.shipping.Quote(ctx, FeeInput{Method: "Express", Subtotal: money("100"), ItemCount: 2, Region: "Kisumu"})
	require.NoError(t, err)
	assert.True(t, quote.Fee.Equal(money("750")), quote.Fee.String())

	// deactivating the surcharge takes effect on the next quote
	_, err = s.shipping.UpsertSurcharge(ctx, &UpsertSurchargeInput{Region: "Kisumu", Fee: money("150"), Active: false})
	require.NoError(t, err)
	quote, err = s.shipping.Quote(ctx, FeeInput{Method: "Express", Subtotal: money("100"), ItemCount: 2, Region: "Kisumu"})
	require.NoError(t, err)
	assert.True(t, quote.Fee.Equal(money("600")), quote.Fee.String())
}

func TestShippingUpsert_Validation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	negative := decimal.NewFromInt(-1)

	_, err := s.shipping.UpsertRule(ctx, &UpsertRuleInput{Method: " ", BaseFee: money("-1"), PerItemFee: money("0"), FreeShippingThreshold: &negative})
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 3)

	_, err = s.shipping.UpsertSurcharge(ctx, &UpsertSurchargeInput{Region: "", Fee: money("-5")})
	appErr = apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)
}
