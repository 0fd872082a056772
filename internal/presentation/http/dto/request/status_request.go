package request

// ToggleStatusRequest sets the active flag of a record
type ToggleStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}
