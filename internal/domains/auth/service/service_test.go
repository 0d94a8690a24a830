package service_test

import (
	"context"
	"net/http"
	"testing"

	"fuego/config"
	"fuego/infras/jwt"
	otelmocks "fuego/infras/otel/mocks"
	"fuego/internal/domains/auth/model/dto"
	"fuego/internal/domains/auth/service"
	"fuego/shared/constant"
	"fuego/shared/failure"
	"fuego/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T, managerPassword string) (service.Auth, jwt.JWT) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	if managerPassword != "" {
		hash, err := password.Hash(managerPassword)
		require.NoError(t, err)
		cfg.Admin.PasswordHash = hash
	}

	tokens := jwt.New(cfg)

	return service.New(cfg, tokens, otelmocks.NewOtel()), tokens
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password yields a manager token pair", func(t *testing.T) {
		svc, tokens := newAuth(t, "segredo-do-gerente")

		res, err := svc.Login(ctx, dto.LoginRequest{Password: "segredo-do-gerente"})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, "Bearer", res.TokenType)

		claims, err := tokens.ValidateToken(res.AccessToken, jwt.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, constant.RoleManager, claims.Role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		svc, _ := newAuth(t, "segredo-do-gerente")

		_, err := svc.Login(ctx, dto.LoginRequest{Password: "chute"})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("missing password hash locks the panel", func(t *testing.T) {
		svc, _ := newAuth(t, "")

		_, err := svc.Login(ctx, dto.LoginRequest{Password: "qualquer"})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token yields a fresh pair", func(t *testing.T) {
		svc, _ := newAuth(t, "segredo-do-gerente")

		login, err := svc.Login(ctx, dto.LoginRequest{Password: "segredo-do-gerente"})
		require.NoError(t, err)

		res, err := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		svc, _ := newAuth(t, "segredo-do-gerente")

		login, err := svc.Login(ctx, dto.LoginRequest{Password: "segredo-do-gerente"})
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.AccessToken})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("garbage refresh token is unauthorized", func(t *testing.T) {
		svc, _ := newAuth(t, "segredo-do-gerente")

		_, err := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: "not-a-token"})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
