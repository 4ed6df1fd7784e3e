package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAdminHRAccessRequired  = errors.New("admin HR access required")
	ErrManagerAccessRequired  = errors.New("manager or admin HR access required")
	ErrEmployeeProfileMissing = errors.New("no employee profile linked to this account")
)
