package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote rejects the session
	// token. The caller is expected to refresh the token via the identity
	// collaborator and run the sync again.
	ErrUnauthorized = errors.New("client unauthorized")

	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrObjectNotFound      = errors.New("object not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
