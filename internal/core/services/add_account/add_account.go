package addaccount

import (
	"context"
	"net/url"
	"signup/internal/core/domain/account"
	e "signup/internal/core/domain/errors"
	httpclient "signup/internal/core/domain/http_client"
	"signup/internal/core/domain/logging"
)

type RemoteAddAccount struct {
	log     logging.Logger
	url     url.URL
	client  httpclient.PostClient
	marshal func(model account.AddAccountModel) ([]byte, error)
}

func New(
	log logging.Logger,
	url url.URL,
	client httpclient.PostClient,
) *RemoteAddAccount {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &RemoteAddAccount{
		log:     log,
		url:     url,
		client:  client,
		marshal: account.AddAccountModel.ToJSON,
	}
}

// Add posts the JSON encoded model to the configured url. If the model can not
// be encoded the request is still sent, without a body.
func (s *RemoteAddAccount) Add(ctx context.Context, model account.AddAccountModel) {
	data, err := s.marshal(model)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not encode account model, posting without body.",
			logging.Entry("model", model),
			logging.Entry("err", err),
		)
		data = nil
	}

	s.client.Post(ctx, s.url, data, func(result httpclient.Result) {
		s.log.Info(
			ctx,
			"Account creation request has completed.",
			logging.Entry("url", s.url.String()),
			logging.Entry("result", result.String()),
		)
	})
}
