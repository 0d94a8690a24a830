package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"

	"fuego/config"
	"fuego/infras/jwt"
	"fuego/infras/otel"
	"fuego/internal/domains/auth/model/dto"
	"fuego/shared/constant"
	"fuego/shared/failure"
	"fuego/shared/password"

	"github.com/rs/zerolog/log"
)

const entityName = "auth"

const msgInvalidCredentials = "invalid credentials"

// Auth gates the manager panel behind a single shared password. There is no
// user table; a correct password yields a manager-role token pair.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.TokenResponse, error)
}

type authServiceImpl struct {
	config *config.Config
	jwt    jwt.JWT
	otel   otel.Otel
}

func New(config *config.Config, jwt jwt.JWT, otel otel.Otel) Auth {
	return &authServiceImpl{
		config: config,
		jwt:    jwt,
		otel:   otel,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Login", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	// No configured hash means the manager panel is locked, not open.
	if s.config.Admin.PasswordHash == "" {
		log.Warn().Msg("Manager login attempted but no password hash is configured")

		return dto.TokenResponse{}, failure.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Verify(req.Password, s.config.Admin.PasswordHash); err != nil {
		return dto.TokenResponse{}, failure.Unauthorized(msgInvalidCredentials)
	}

	pair, err := s.jwt.GenerateTokenPair(constant.RoleManager)
	if err != nil {
		log.Error().Err(err).Msg("Failed generating manager token pair")
		scope.TraceError(err)

		return dto.TokenResponse{}, failure.InternalError(err)
	}

	var res dto.TokenResponse
	res.FromTokenPair(pair)

	return res, nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (dto.TokenResponse, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Refresh", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return dto.TokenResponse{}, failure.Unauthorized(msgInvalidCredentials)
	}

	var res dto.TokenResponse
	res.FromTokenPair(pair)

	return res, nil
}
