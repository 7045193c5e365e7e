package dto

import (
	userModel "phoenix/internal/domains/user/model"
)

type RegisterRequest struct {
	Email           string `form:"email"            json:"email"            validate:"required,email"`
	Password        string `form:"password"         json:"password"         validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `form:"first_name"       json:"first_name"       validate:"required,max=100"`
	LastName        string `form:"last_name"        json:"last_name"        validate:"required,max=100"`
	PhoneNumber     string `form:"phone_number"     json:"phone_number"     validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// VerifyEmailRequest carries the 6-digit code the registration email
// delivered. The handler assembles OTP from the six per-digit inputs before
// validation.
type VerifyEmailRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
	OTP   string `form:"otp"   json:"otp"   validate:"required,len=6,numeric"`
}

type ResendOTPRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}

type UpdateProfileRequest struct {
	FirstName   string `form:"first_name"   json:"first_name,omitempty"   validate:"omitempty,max=100"`
	LastName    string `form:"last_name"    json:"last_name,omitempty"    validate:"omitempty,max=100"`
	PhoneNumber string `form:"phone_number" json:"phone_number,omitempty" validate:"omitempty,max=20"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  userModel.User `json:"user"`
}
