package httpclient

import "errors"

var (
	ErrNoConnectivity = errors.New("no connectivity")
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrServerError    = errors.New("server error")
)
