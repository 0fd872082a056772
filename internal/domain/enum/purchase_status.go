package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PurchaseOrderStatus represents the lifecycle of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "pending"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a known status
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order may move from s to next.
// Only pending orders move; received and cancelled are terminal.
func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	return s == PurchaseOrderStatusPending &&
		(next == PurchaseOrderStatusReceived || next == PurchaseOrderStatusCancelled)
}

func (s PurchaseOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PurchaseOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	status := PurchaseOrderStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("unknown purchase order status %q", str)
	}
	*s = status
	return nil
}

func (s PurchaseOrderStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PurchaseOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseOrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PurchaseOrderStatus(v)
	case []byte:
		*s = PurchaseOrderStatus(string(v))
	}
	return nil
}
