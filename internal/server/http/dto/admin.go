package dto

// UserUpdateRequest is an administrative account edit; omitted fields stay unchanged.
type UserUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// StatusRequest moves an order to another status.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
