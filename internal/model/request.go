package model

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SigninResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest carries only the fields present in the request body.
// Password is optional; when non-empty it is re-hashed before persistence.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
}

type CreateSkillRequest struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"gte=0,lte=100"`
}

type UpdateSkillRequest struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"gte=0,lte=100"`
}

type ValidateResponse struct {
	User User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
