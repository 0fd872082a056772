package enum

import "fmt"

// StatusTarget names an entity whose active flag can be toggled.
// The set is closed; request input is parsed into one of these and never used as a table name.
type StatusTarget string

const (
	StatusTargetCoupons          StatusTarget = "coupons"
	StatusTargetSuppliers        StatusTarget = "suppliers"
	StatusTargetProducts         StatusTarget = "products"
	StatusTargetShippingRules    StatusTarget = "shipping-rules"
	StatusTargetRegionSurcharges StatusTarget = "region-surcharges"
)

// StatusTargets lists every toggle target
var StatusTargets = []StatusTarget{
	StatusTargetCoupons,
	StatusTargetSuppliers,
	StatusTargetProducts,
	StatusTargetShippingRules,
	StatusTargetRegionSurcharges,
}

func ParseStatusTarget(s string) (StatusTarget, error) {
	for _, t := range StatusTargets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown status target %q", s)
}
