package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screens/errtext"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to your account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		p := newPrompter()

		var form auth.LoginForm
		if len(args) == 1 {
			form.Email = args[0]
		} else if form.Email, err = p.line(i18n.T("auth.email"), ""); err != nil {
			return err
		}
		if form.Password, err = p.secret(i18n.T("auth.password")); err != nil {
			return err
		}

		user, err := e.auth.Login(cmd.Context(), form)
		if err != nil {
			if apiErr, ok := api.AsAPIError(err); ok && apiErr.EmailNotVerified() {
				fmt.Println(errtext.Of(err))
				fmt.Println(i18n.T("cli.verify_hint"))
				return nil
			}
			return errors.New(errtext.Of(err))
		}
		fmt.Println(i18n.Td("cli.logged_in", map[string]any{"Name": user.Username}))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if !e.creds.LoggedIn() {
			fmt.Println(i18n.T("cli.not_logged_in"))
			return nil
		}
		if err := e.auth.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Println(i18n.T("cli.logged_out"))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		p := newPrompter()

		var form auth.RegisterForm
		if form.Username, err = p.line(i18n.T("auth.username"), ""); err != nil {
			return err
		}
		if form.Email, err = p.line(i18n.T("auth.email"), ""); err != nil {
			return err
		}
		if form.Password, err = p.secret(i18n.T("auth.password")); err != nil {
			return err
		}
		if form.ConfirmPassword, err = p.secret(i18n.T("auth.confirm_password")); err != nil {
			return err
		}

		if err := e.auth.Register(cmd.Context(), form); err != nil {
			return formError(err)
		}
		fmt.Println(i18n.Td("cli.registered", map[string]any{"Email": form.Email}))
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Confirm your email with the emailed code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		user, err := e.auth.Verify(cmd.Context(), args[0])
		if err != nil {
			return formError(err)
		}
		fmt.Println(i18n.Td("cli.logged_in", map[string]any{"Name": user.Username}))
		return nil
	},
}

var resendCmd = &cobra.Command{
	Use:   "resend-verification <email>",
	Short: "Send the verification code again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := e.auth.ResendVerification(cmd.Context(), args[0]); err != nil {
			return formError(err)
		}
		fmt.Println(i18n.T("verify.resent"))
		return nil
	},
}

var forgotCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Request a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		err = e.auth.RequestPasswordReset(cmd.Context(), args[0])
		var inv *auth.ErrInvalidForm
		if errors.As(err, &inv) {
			return formError(err)
		}
		// Same answer whether or not the address exists.
		fmt.Println(i18n.T("forgot.sent"))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		c, ok := e.creds.Current()
		if !ok {
			fmt.Println(i18n.T("cli.not_logged_in"))
			return nil
		}
		fmt.Printf("%s <%s>\n", c.User.Username, c.User.Email)
		if _, err := e.creds.Token(cmd.Context()); errors.Is(err, auth.ErrTokenExpired) {
			fmt.Println(i18n.T("cli.token_expired"))
		}
		return nil
	},
}

// formError joins every field message of a rejected form into one error.
func formError(err error) error {
	fields := errtext.Fields(err)
	if len(fields) == 0 {
		return errors.New(errtext.Of(err))
	}
	msg := i18n.T("cli.invalid_form")
	for name, text := range fields {
		msg += fmt.Sprintf("\n  %s: %s", name, text)
	}
	return errors.New(msg)
}
