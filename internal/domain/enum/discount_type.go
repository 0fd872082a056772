package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountType is how a coupon's discount value is applied
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	dt := DiscountType(str)
	if !dt.IsValid() {
		return fmt.Errorf("unknown discount type %q", str)
	}
	*t = dt
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = DiscountType(v)
	case []byte:
		*t = DiscountType(string(v))
	case nil:
		*t = DiscountTypeFixed
	}
	return nil
}
