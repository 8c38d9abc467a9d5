package httpadapter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	c "signup/internal/core/domain/common"
	e "signup/internal/core/domain/errors"
	httpclient "signup/internal/core/domain/http_client"
	"signup/internal/core/domain/logging"

	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-Id"

// Doer is the transport used by Adapter. *http.Client implements it.
type Doer interface {
	Do(request *http.Request) (*http.Response, error)
}

type Adapter struct {
	log          logging.Logger
	doer         Doer
	newRequestID func() string
}

func New(log logging.Logger, doer Doer) *Adapter {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if doer == nil {
		panic(e.NewNilArgumentError("doer"))
	}
	return &Adapter{
		log:          log,
		doer:         doer,
		newRequestID: uuid.NewString,
	}
}

// Post runs the request on its own goroutine and calls completion once the
// transport is done with it.
func (a *Adapter) Post(ctx context.Context, url url.URL, data []byte, completion func(httpclient.Result)) {
	go func() {
		result := a.Do(ctx, url, data)
		if completion != nil {
			completion(result)
		}
	}()
}

func (a *Adapter) Do(ctx context.Context, url url.URL, data []byte) httpclient.Result {
	requestID := a.newRequestID()

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), body)
	if err != nil {
		logging.Error(ctx, a.log, err, logging.Entry("requestId", requestID))
		return httpclient.Failure(httpclient.ErrNoConnectivity)
	}
	request.Header.Set(REQUEST_ID_HEADER, requestID)
	if data != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	a.log.Debug(
		ctx,
		"Sending POST request.",
		logging.Entry("requestId", requestID),
		logging.Entry("url", url.String()),
		logging.Entry("size", len(data)),
	)
	response, err := a.doer.Do(request)
	if err != nil {
		a.log.Warning(
			ctx,
			"POST request has failed.",
			logging.Entry("requestId", requestID),
			logging.Entry("err", err),
		)
		return Classify(c.None[int](), nil, err)
	}
	if response == nil {
		a.log.Warning(ctx, "Transport returned no response.", logging.Entry("requestId", requestID))
		return Classify(c.None[int](), nil, nil)
	}

	payload, err := readBody(response)
	result := Classify(c.Some(response.StatusCode), payload, err)
	a.log.Info(
		ctx,
		"POST request has completed.",
		logging.Entry("requestId", requestID),
		logging.Entry("status", response.StatusCode),
		logging.Entry("result", result.String()),
	)
	return result
}

func readBody(response *http.Response) ([]byte, error) {
	if response.Body == nil {
		return nil, nil
	}
	defer response.Body.Close()
	return io.ReadAll(response.Body)
}
