package authservice

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=72"`
	Name     string `json:"name"     validate:"notblank,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest changes the caller's own account. Nil fields are kept.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=5,max=72"`
}
