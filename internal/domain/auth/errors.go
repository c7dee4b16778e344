package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid staff id or PIN")
	ErrNotLoggedIn        = errors.New("no staff member is logged in")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
