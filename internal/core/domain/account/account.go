package account

import (
	"context"
	"encoding/json"
	"fmt"
)

// AddAccountModel is encoded as a JSON object with the keys
// "name", "email", "password" and "passwordConfirmation", in that order.
type AddAccountModel struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

func (m AddAccountModel) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// String hides both passwords so the model can be logged.
func (m AddAccountModel) String() string {
	return fmt.Sprintf("{name: %q, email: %q, password: ***, passwordConfirmation: ***}", m.Name, m.Email)
}

type AddAccount interface {
	Add(ctx context.Context, model AddAccountModel)
}
