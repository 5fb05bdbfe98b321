package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
