package httpadapter

import (
	"net/http"
	c "signup/internal/core/domain/common"
	httpclient "signup/internal/core/domain/http_client"
)

// Classify maps what the transport reported for one request to a result.
// Every combination of arguments maps to exactly one result.
func Classify(statusCode c.Optional[int], data []byte, transportErr error) httpclient.Result {
	if transportErr != nil || !statusCode.IsPresent {
		return httpclient.Failure(httpclient.ErrNoConnectivity)
	}

	code := statusCode.Value
	switch {
	case code == http.StatusNoContent:
		return httpclient.Success(nil)
	case code >= 200 && code <= 299:
		return httpclient.Success(data)
	case code == http.StatusUnauthorized:
		return httpclient.Failure(httpclient.ErrUnauthorized)
	case code == http.StatusForbidden:
		return httpclient.Failure(httpclient.ErrForbidden)
	case code >= 400 && code <= 499:
		return httpclient.Failure(httpclient.ErrBadRequest)
	case code >= 500 && code <= 599:
		return httpclient.Failure(httpclient.ErrServerError)
	default:
		return httpclient.Failure(httpclient.ErrNoConnectivity)
	}
}
