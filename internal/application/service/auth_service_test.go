package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salepoint/salepoint-api/pkg/apperror"
	"github.com/salepoint/salepoint-api/pkg/utils"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc, err := NewAuthService(jwtManager, "4321")
	require.NoError(t, err)
	return svc
}

func TestLogin_CorrectPIN(t *testing.T) {
	svc := newTestAuth(t)

	pair, err := svc.Login("4321")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestLogin_WrongPIN(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Login("0000")
	assert.ErrorIs(t, err, apperror.ErrInvalidPIN)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	svc := newTestAuth(t)

	pair, err := svc.Login("4321")
	require.NoError(t, err)

	access, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
