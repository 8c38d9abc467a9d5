package deps

import (
	"context"
	"io"
	"net/http"
	"signup/internal/config"
	"signup/internal/core/domain/account"
	httpclient "signup/internal/core/domain/http_client"
	dl "signup/internal/core/domain/logging"
	addaccount "signup/internal/core/services/add_account"
	httpadapter "signup/internal/implementations/http_adapter"
	"signup/internal/implementations/logging"
	terminalalertview "signup/internal/implementations/terminal_alert_view"
	"signup/internal/presentation/alert"
	signup "signup/internal/presentation/sign_up"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	HttpClient *http.Client
	PostClient httpclient.PostClient
	AlertView  alert.View

	AddAccount      account.AddAccount
	SignUpPresenter *signup.Presenter

	tracking *trackingClient
}

func InitDeps(cfg *config.Config, alertOut io.Writer) (*Deps, func(), error) {
	deps := &Deps{Config: cfg}

	closeLogger, err := deps.initLogger()
	if err != nil {
		return nil, nil, err
	}
	deps.initHttpClient()

	deps.tracking = newTrackingClient(httpadapter.New(deps.Logger, deps.HttpClient))
	deps.PostClient = deps.tracking
	deps.AlertView = terminalalertview.New(alertOut)

	deps.AddAccount = addaccount.New(deps.Logger, cfg.SignUpURL, deps.PostClient)
	deps.SignUpPresenter = signup.New(deps.Logger, deps.AlertView)

	return deps, func() {
		deps.HttpClient.CloseIdleConnections()
		closeLogger()
	}, nil
}

// WaitForRequests blocks until every request posted so far has completed and
// returns their outcomes in completion order.
func (deps *Deps) WaitForRequests() []httpclient.Result {
	return deps.tracking.Wait()
}

func (deps *Deps) initLogger() (func(), error) {
	logger, err := logging.NewZapLogger(deps.Config.LogLevel)
	if err != nil {
		return nil, err
	}
	deps.Logger = logger
	return func() { logger.Sync() }, nil
}

func (deps *Deps) initHttpClient() {
	deps.HttpClient = &http.Client{
		Timeout: deps.Config.HttpRequestTimeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	deps.Logger.Info(
		context.Background(),
		"HTTP client has been initialized.",
		dl.Entry("signUpUrl", deps.Config.SignUpURL.String()),
		dl.Entry("timeout", deps.Config.HttpRequestTimeout.String()),
	)
}
