package services

import (
	"testing"

	"congtrinh/constants"
	apperrors "congtrinh/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 5, Role: constants.RoleAccountant}, 60, true)
	require.NoError(t, err)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), userID)
	assert.Equal(t, constants.RoleAccountant, role)

	onlyID, err := GetIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), onlyID)
}

func TestGetUserIDFromTokenRejectsUnknownRole(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 7, Role: 9}, 60, true)
	require.NoError(t, err)

	_, _, err = GetUserIDFromToken(token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRole, apperrors.GetAppError(err).Code)
}

func TestVerifyAccessToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 3, Role: constants.RoleSiteManager}, 60, true)
	require.NoError(t, err)

	userInfo, err := VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), userInfo.UserId)
	assert.Equal(t, constants.RoleSiteManager, userInfo.Role)
}

func TestVerifyAccessTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 3, Role: constants.RoleAdmin}, 60, true)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token + "x")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.GetAppError(err).Code)
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 3, Role: constants.RoleAdmin}, -1, true)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.GetAppError(err).Code)
}

func TestGetUserIDFromTokenMalformed(t *testing.T) {
	tests := []string{
		"",
		"not-a-token",
		"a.b",
		"!!!.###.$$$",
	}

	for _, tokenString := range tests {
		_, _, err := GetUserIDFromToken(tokenString)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.GetAppError(err).Code)
	}
}
