package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseOrderStatus_Transitions(t *testing.T) {
	assert.True(t, PurchaseOrderStatusPending.CanTransitionTo(PurchaseOrderStatusReceived))
	assert.True(t, PurchaseOrderStatusPending.CanTransitionTo(PurchaseOrderStatusCancelled))
	assert.False(t, PurchaseOrderStatusReceived.CanTransitionTo(PurchaseOrderStatusCancelled))
	assert.False(t, PurchaseOrderStatusCancelled.CanTransitionTo(PurchaseOrderStatusReceived))
	assert.False(t, PurchaseOrderStatusPending.CanTransitionTo(PurchaseOrderStatusPending))
}

func TestPurchaseOrderStatus_UnmarshalRejectsUnknown(t *testing.T) {
	var s PurchaseOrderStatus
	assert.Error(t, json.Unmarshal([]byte(`"approved"`), &s))
	require.NoError(t, json.Unmarshal([]byte(`"received"`), &s))
	assert.Equal(t, PurchaseOrderStatusReceived, s)
}

func TestDiscountType_Unmarshal(t *testing.T) {
	var d DiscountType
	require.NoError(t, json.Unmarshal([]byte(`"percentage"`), &d))
	assert.Equal(t, DiscountTypePercentage, d)
	assert.Error(t, json.Unmarshal([]byte(`"bogo"`), &d))
}

func TestParseSupplierType(t *testing.T) {
	got, err := ParseSupplierType("")
	require.NoError(t, err)
	assert.Equal(t, SupplierTypeDistributor, got)

	_, err = ParseSupplierType("retailer")
	assert.Error(t, err)
}

func TestParseStatusTarget(t *testing.T) {
	got, err := ParseStatusTarget("shipping-rules")
	require.NoError(t, err)
	assert.Equal(t, StatusTargetShippingRules, got)

	_, err = ParseStatusTarget("users; DROP TABLE users")
	assert.Error(t, err)
}

func TestInvoiceStatus_StoredValues(t *testing.T) {
	v, err := InvoiceStatusPaid.Value()
	require.NoError(t, err)
	assert.Equal(t, "Paid", v)

	var s InvoiceStatus
	require.NoError(t, s.Scan([]byte("pending")))
	assert.Equal(t, InvoiceStatusPending, s)
}
