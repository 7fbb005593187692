package handler

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"omitempty,max=15"`
}

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Phone    *string `json:"phone"    validate:"omitempty,max=15"`
}
