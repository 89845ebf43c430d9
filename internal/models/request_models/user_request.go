package request_models

type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Photo   *string `json:"photo"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UserFilter is passed straight through to the store as a query.
type UserFilter struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Role  string `form:"role"`
}
