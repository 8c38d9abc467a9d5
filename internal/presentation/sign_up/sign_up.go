package signup

import (
	"context"
	"errors"
	c "signup/internal/core/domain/common"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	"signup/internal/presentation/alert"

	validation "github.com/go-ozzo/ozzo-validation"
)

const VALIDATION_FAILED_TITLE = "Falha na validação"

var errAbsent = errors.New("must be provided")

type ViewModel struct {
	Name                 c.Optional[string]
	Email                c.Optional[string]
	Password             c.Optional[string]
	PasswordConfirmation c.Optional[string]
}

type field struct {
	name    string
	value   c.Optional[string]
	message string
}

// fields lists the checks in the order they run.
func (m ViewModel) fields() []field {
	return []field{
		{name: "name", value: m.Name, message: "O campo Nome é obrigatório"},
		{name: "email", value: m.Email, message: "O campo E-mail é obrigatório"},
		{name: "password", value: m.Password, message: "O campo Senha é obrigatório"},
		{name: "passwordConfirmation", value: m.PasswordConfirmation, message: "O campo Confirmar Senha é obrigatório"},
	}
}

// provided fails for absent values and for the empty string. Whitespace is
// kept as is.
var provided = validation.By(func(value interface{}) error {
	optional, ok := value.(c.Optional[string])
	if !ok || !optional.IsPresent {
		return errAbsent
	}
	return validation.Validate(optional.Value, validation.Required)
})

// IsValid reports whether SignUp would show no alert for m.
func (m ViewModel) IsValid() bool {
	for _, f := range m.fields() {
		if validation.Validate(f.value, provided) != nil {
			return false
		}
	}
	return true
}

type Presenter struct {
	log       logging.Logger
	alertView alert.View
}

func New(log logging.Logger, alertView alert.View) *Presenter {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if alertView == nil {
		panic(e.NewNilArgumentError("alertView"))
	}
	return &Presenter{log: log, alertView: alertView}
}

// SignUp shows an alert for the first field that is missing. Nothing is shown
// when every field is filled in.
func (p *Presenter) SignUp(ctx context.Context, viewModel ViewModel) {
	for _, f := range viewModel.fields() {
		err := validation.Validate(f.value, provided)
		if err == nil {
			continue
		}
		p.log.Info(
			ctx,
			"Sign up form is invalid.",
			logging.Entry("field", f.name),
			logging.Entry("err", err),
		)
		p.alertView.ShowMessage(alert.ViewModel{Title: VALIDATION_FAILED_TITLE, Message: f.message})
		return
	}
}
