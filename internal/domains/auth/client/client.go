package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"phoenix/infras/api"
	"phoenix/internal/domains/auth/model/dto"
	userModel "phoenix/internal/domains/user/model"
)

const (
	pathRegister      = "/auth/register/"
	pathRegisterStaff = "/auth/register/staff/"
	pathRegisterAdmin = "/auth/register/admin/"
	pathLogin         = "/auth/login/"
	pathVerifyEmail   = "/auth/verify-email/"
	pathResendOTP     = "/auth/resend-otp/"
	pathProfile       = "/profile/"
)

// Auth talks to the backend's account endpoints. Credentials pass straight
// through; nothing is hashed or checked here.
type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	RegisterStaff(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	RegisterAdmin(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error
	ResendOTP(ctx context.Context, req dto.ResendOTPRequest) error
	Profile(ctx context.Context) (userModel.User, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (userModel.User, error)
}

type clientImpl struct {
	api api.Client
}

func New(apiClient api.Client) Auth {
	return &clientImpl{api: apiClient}
}

func (c *clientImpl) Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error) {
	var res dto.RegisterResponse

	err := c.api.Post(ctx, pathRegister, req, &res)

	return res, err
}

func (c *clientImpl) RegisterStaff(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error) {
	var res dto.RegisterResponse

	err := c.api.Post(ctx, pathRegisterStaff, req, &res)

	return res, err
}

func (c *clientImpl) RegisterAdmin(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error) {
	var res dto.RegisterResponse

	err := c.api.Post(ctx, pathRegisterAdmin, req, &res)

	return res, err
}

func (c *clientImpl) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	var res dto.LoginResponse

	err := c.api.Post(ctx, pathLogin, req, &res)

	return res, err
}

func (c *clientImpl) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error {
	return c.api.Post(ctx, pathVerifyEmail, req, nil)
}

func (c *clientImpl) ResendOTP(ctx context.Context, req dto.ResendOTPRequest) error {
	return c.api.Post(ctx, pathResendOTP, req, nil)
}

func (c *clientImpl) Profile(ctx context.Context) (userModel.User, error) {
	var user userModel.User

	err := c.api.Get(ctx, pathProfile, nil, &user)

	return user, err
}

func (c *clientImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (userModel.User, error) {
	var user userModel.User

	err := c.api.Patch(ctx, pathProfile, req, &user)

	return user, err
}
