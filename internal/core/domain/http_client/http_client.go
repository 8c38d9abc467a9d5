package httpclient

import (
	"context"
	"fmt"
	"net/url"
)

type PostClient interface {
	// Post sends data to url and calls completion exactly once with the outcome.
	// A nil data means the request has no body.
	Post(ctx context.Context, url url.URL, data []byte, completion func(Result))
}

// Result is either a success carrying optional data or a failure carrying
// one of the errors declared in errors.go, never both.
type Result struct {
	Data []byte
	Err  error
}

// Success returns a successful result. Empty data is stored as nil.
func Success(data []byte) Result {
	if len(data) == 0 {
		data = nil
	}
	return Result{Data: data}
}

// Failure returns a failed result. A nil err is treated as ErrNoConnectivity.
func Failure(err error) Result {
	if err == nil {
		err = ErrNoConnectivity
	}
	return Result{Err: err}
}

func (r Result) IsSuccess() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if r.IsSuccess() {
		if r.Data == nil {
			return "success(-)"
		}
		return fmt.Sprintf("success(%d bytes)", len(r.Data))
	}
	return fmt.Sprintf("failure(%v)", r.Err)
}
