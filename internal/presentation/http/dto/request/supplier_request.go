package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
	KRAPin  *string `json:"kra_pin" binding:"omitempty,max=20"`
	Type    string  `json:"type"`
}
