package jwt

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentindo/hris-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	employeeID := int64(7)
	tokenString, expiresAt, err := svc.GenerateAccessToken(42, "budi@example.com", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "budi@example.com", claims["email"])

	userID, err := IDFromClaims(claims, "user_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	empID, err := IDFromClaims(claims, "employee_id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), empID)

	role, err := RoleFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, role)
}

func TestGenerateAccessToken_WithoutEmployeeProfile(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateAccessToken(42, "hr@example.com", nil, user.RoleAdminHR)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	_, hasEmployeeID := claims["employee_id"]
	assert.False(t, hasEmployeeID)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, expiresAt, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "refresh", claims["type"])
	userID, err := IDFromClaims(claims, "user_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestGenerateToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "also-not")

	_, _, err := svc.GenerateAccessToken(42, "budi@example.com", nil, user.RoleEmployee)
	assert.Error(t, err)

	_, _, err = svc.GenerateRefreshToken(42)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	cookie := svc.RefreshTokenCookie("some-token", 1_750_000_000)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestIDFromClaims(t *testing.T) {
	cases := []struct {
		name    string
		claims  map[string]interface{}
		want    int64
		wantErr bool
	}{
		{"float64", map[string]interface{}{"user_id": float64(42)}, 42, false},
		{"int64", map[string]interface{}{"user_id": int64(42)}, 42, false},
		{"json.Number", map[string]interface{}{"user_id": json.Number("42")}, 42, false},
		{"string", map[string]interface{}{"user_id": "42"}, 42, false},
		{"missing", map[string]interface{}{}, 0, true},
		{"nil", map[string]interface{}{"user_id": nil}, 0, true},
		{"bool", map[string]interface{}{"user_id": true}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IDFromClaims(tc.claims, "user_id")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRoleFromClaims_Unknown(t *testing.T) {
	_, err := RoleFromClaims(map[string]interface{}{"role": "superuser"})
	assert.Error(t, err)

	_, err = RoleFromClaims(map[string]interface{}{})
	assert.Error(t, err)
}
