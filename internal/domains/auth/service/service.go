package service

import (
	"context"
	"fmt"
	"phoenix/infras/otel"
	"phoenix/internal/domains/auth/client"
	"phoenix/internal/domains/auth/model/dto"
	userModel "phoenix/internal/domains/user/model"
	"phoenix/shared/constant"
	"phoenix/shared/failure"
	"phoenix/shared/validator"

	"github.com/rs/zerolog/log"
)

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

type serviceImpl struct {
	authClient client.Auth
	otel       otel.Otel
}

func New(authClient client.Auth, ot otel.Otel) Auth {
	return &serviceImpl{
		authClient: authClient,
		otel:       ot,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.authClient.Register(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("registration rejected")

		return res, err
	}

	if res.Email == "" {
		res.Email = req.Email
	}

	return res, nil
}

func (s *serviceImpl) RegisterStaff(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	return s.authClient.RegisterStaff(ctx, req)
}

func (s *serviceImpl) RegisterAdmin(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	return s.authClient.RegisterAdmin(ctx, req)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.authClient.Login(ctx, req)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login rejected by backend")

		return res, err
	}

	if res.Token == "" || !res.User.Valid() {
		log.Error().Str("email", req.Email).Str("role", res.User.Role).Msg("backend returned unusable login payload")

		return dto.LoginResponse{}, failure.InternalError(fmt.Errorf("backend returned unusable login payload"))
	}

	return res, nil
}

func (s *serviceImpl) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	return s.authClient.VerifyEmail(ctx, req)
}

func (s *serviceImpl) ResendOTP(ctx context.Context, req dto.ResendOTPRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResendOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	return s.authClient.ResendOTP(ctx, req)
}

func (s *serviceImpl) Profile(ctx context.Context) (user userModel.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.authClient.Profile(ctx)
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (user userModel.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return user, err
	}

	return s.authClient.UpdateProfile(ctx, req)
}
