package token_test

import (
	"phoenix/config"
	"phoenix/infras/token"
	"phoenix/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newService() token.Tokens {
	cfg := &config.Config{}
	cfg.App.Name = "Phoenix Hotels"
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLMinutes = 60

	return token.New(cfg)
}

func TestIssueAndValidate(t *testing.T) {
	svc := newService()

	signed, err := svc.Issue("sess-123", constant.RoleStaff)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := svc.Validate(signed)
	assert.NoError(t, err)
	assert.Equal(t, "sess-123", claims.SessionID)
	assert.Equal(t, constant.RoleStaff, claims.Role)
}

func TestValidate_Garbage(t *testing.T) {
	svc := newService()

	_, err := svc.Validate("not-a-jwt")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := newService()

	other := &config.Config{}
	other.Session.Secret = "different-secret"
	other.Session.TTLMinutes = 60

	signed, err := token.New(other).Issue("sess-999", constant.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
