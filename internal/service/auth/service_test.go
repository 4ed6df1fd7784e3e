package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentindo/hris-backend-go/internal/domain/auth"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/user"
	"github.com/talentindo/hris-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "168h"
	testPassword   = "password123"
)

type fakeUserRepo struct {
	users []user.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return r.employees, int64(len(r.employees)), nil
}

func (r *fakeEmployeeRepo) ListByEmploymentStatus(_ context.Context, _ []employee.EmploymentStatus) ([]employee.Employee, error) {
	return r.employees, nil
}

func newAuthTestService(t *testing.T) (Service, jwt.Service) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{users: []user.User{
		{ID: 1, Name: "Budi", Email: "budi@example.com", PasswordHash: string(hashed), Role: user.RoleEmployee},
		{ID: 2, Name: "HR Admin", Email: "hr@example.com", PasswordHash: string(hashed), Role: user.RoleAdminHR},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: 7, UserID: 1, EmployeeCode: "EMP0001"},
	}}

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewService(userRepo, employeeRepo, jwtService), jwtService
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.ExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresAt, int64(0))
	assert.Equal(t, int64(1), resp.User.ID)
	require.NotNil(t, resp.User.EmployeeID)
	assert.Equal(t, int64(7), *resp.User.EmployeeID)
}

// Admin HR accounts may have no employee profile.
func TestLogin_WithoutEmployeeProfile(t *testing.T) {
	svc, _ := newAuthTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.User.EmployeeID)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// Unknown email reports the same error as a wrong password.
func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

// An access token must not be usable on the refresh endpoint.
func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, jwtService := newAuthTestService(t)

	accessToken, _, err := jwtService.GenerateAccessToken(1, "budi@example.com", nil, user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RevokedToken(t *testing.T) {
	svc, _ := newAuthTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Refresh(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRequired)
}

func TestLogout_RequiresToken(t *testing.T) {
	svc, _ := newAuthTestService(t)

	err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRequired)
}
