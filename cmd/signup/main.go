package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"signup/internal/app/deps"
	"signup/internal/config"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	signup "signup/internal/presentation/sign_up"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	FLAG_NAME                  = "name"
	FLAG_EMAIL                 = "email"
	FLAG_PASSWORD              = "password"
	FLAG_PASSWORD_CONFIRMATION = "password-confirmation"
	FLAG_ENV_FILE              = "env-file"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer, alertOut io.Writer) *cobra.Command {
	command := &cobra.Command{
		Use:          "signup",
		Short:        "Validate a sign up form and create the account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString(FLAG_ENV_FILE)
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			d, closeDeps, err := deps.InitDeps(cfg, alertOut)
			if err != nil {
				return err
			}
			defer closeDeps()
			return run(cmd.Context(), d, viewModelFromFlags(cmd), out)
		},
	}
	command.Flags().String(FLAG_NAME, "", "account name")
	command.Flags().String(FLAG_EMAIL, "", "account e-mail")
	command.Flags().String(FLAG_PASSWORD, "", "account password")
	command.Flags().String(FLAG_PASSWORD_CONFIRMATION, "", "password confirmation")
	command.Flags().String(FLAG_ENV_FILE, config.DEFAULT_ENV_FILE, "file with environment variables")
	return command
}

// viewModelFromFlags maps flags that were not given to absent fields.
func viewModelFromFlags(cmd *cobra.Command) signup.ViewModel {
	flag := func(name string) c.Optional[string] {
		if !cmd.Flags().Changed(name) {
			return c.None[string]()
		}
		value, _ := cmd.Flags().GetString(name)
		return c.Some(value)
	}
	return signup.ViewModel{
		Name:                 flag(FLAG_NAME),
		Email:                flag(FLAG_EMAIL),
		Password:             flag(FLAG_PASSWORD),
		PasswordConfirmation: flag(FLAG_PASSWORD_CONFIRMATION),
	}
}

func run(ctx context.Context, d *deps.Deps, viewModel signup.ViewModel, out io.Writer) error {
	d.SignUpPresenter.SignUp(ctx, viewModel)
	if !viewModel.IsValid() {
		return fmt.Errorf("sign up form is invalid")
	}

	d.AddAccount.Add(ctx, account.AddAccountModel{
		Name:                 viewModel.Name.Value,
		Email:                viewModel.Email.Value,
		Password:             viewModel.Password.Value,
		PasswordConfirmation: viewModel.PasswordConfirmation.Value,
	})
	for _, result := range d.WaitForRequests() {
		if !result.IsSuccess() {
			return fmt.Errorf("account was not created: %w", result.Err)
		}
		fmt.Fprintf(out, "Account created (%s).\n", result.String())
	}
	return nil
}
