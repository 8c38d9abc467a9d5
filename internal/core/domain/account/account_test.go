package account

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSONKeepsFieldOrder(t *testing.T) {
	model := AddAccountModel{
		Name:                 "Any Name",
		Email:                "any_email@mail.com",
		Password:             "any_password",
		PasswordConfirmation: "any_password",
	}

	data, err := model.ToJSON()

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(
		`{"name":"Any Name","email":"any_email@mail.com","password":"any_password","passwordConfirmation":"any_password"}`,
		string(data),
	)
}

func TestToJSONEmptyModel(t *testing.T) {
	data, err := AddAccountModel{}.ToJSON()

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(`{"name":"","email":"","password":"","passwordConfirmation":""}`, string(data))
}

func TestStringHidesPasswords(t *testing.T) {
	model := AddAccountModel{Name: "n", Email: "e", Password: "secret", PasswordConfirmation: "secret"}

	assert := require.New(t)
	assert.NotContains(model.String(), "secret")
	assert.Contains(model.String(), `"n"`)
	assert.Contains(model.String(), `"e"`)
}
