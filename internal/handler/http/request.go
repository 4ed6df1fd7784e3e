package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/talentindo/hris-backend-go/internal/domain/user"
	"github.com/talentindo/hris-backend-go/internal/pkg/jwt"
)

// idParam parses the {id} URL parameter as int64.
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// currentUserID reads the authenticated user's id from the JWT claims.
func currentUserID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	return jwt.IDFromClaims(claims, "user_id")
}

// currentRole reads the authenticated user's role from the JWT claims.
func currentRole(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	return jwt.RoleFromClaims(claims)
}

// currentEmployeeID reads the employee_id claim; it is absent for
// accounts with no employee profile.
func currentEmployeeID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	return jwt.IDFromClaims(claims, "employee_id")
}

// pagination reads page/limit query parameters with defaults.
func pagination(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return page, limit
}

// optionalQuery returns the query parameter value or nil when absent.
func optionalQuery(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}
