package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		pw    string
		score int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdefgh", 1},
		{"abcdefghijkl", 2},
		{"Abcdefgh", 2},
		{"Abcdefg1", 3},
		{"Abcdefg1!", 4},
		{"Abcdefghij1!", 5},
	}
	for _, tt := range tests {
		t.Run(tt.pw, func(t *testing.T) {
			assert.Equal(t, tt.score, PasswordStrength(tt.pw))
		})
	}

	assert.Equal(t, StrengthNone, StrengthOf(""))
	assert.Equal(t, StrengthWeak, StrengthOf("abcdefgh"))
	assert.Equal(t, StrengthMedium, StrengthOf("Abcdefg1"))
	assert.Equal(t, StrengthGood, StrengthOf("Abcdefg1!"))
	assert.Equal(t, StrengthVeryGood, StrengthOf("Abcdefghij1!"))
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, Validate(LoginForm{Email: "ola@example.pl", Password: "x"}))

	err := Validate(LoginForm{Email: "nope", Password: ""})
	var inv *ErrInvalidForm
	require.ErrorAs(t, err, &inv)

	f, ok := inv.Field("email")
	require.True(t, ok)
	assert.Equal(t, "email", f.Tag)
	f, ok = inv.Field("password")
	require.True(t, ok)
	assert.Equal(t, "required", f.Tag)
}

func TestValidateRegister(t *testing.T) {
	valid := RegisterForm{
		Username:        "ola_k-1",
		Email:           "ola@example.pl",
		Password:        "Matura2026!",
		ConfirmPassword: "Matura2026!",
	}
	require.NoError(t, Validate(valid))

	tests := []struct {
		name  string
		edit  func(*RegisterForm)
		field string
		tag   string
	}{
		{"short username", func(f *RegisterForm) { f.Username = "ab" }, "username", "min"},
		{"long username", func(f *RegisterForm) { f.Username = "abcdefghijklmnopqrstu" }, "username", "max"},
		{"bad username chars", func(f *RegisterForm) { f.Username = "ola kowalska" }, "username", "username"},
		{"weak password", func(f *RegisterForm) { f.Password, f.ConfirmPassword = "abcdefgh", "abcdefgh" }, "password", "strongpassword"},
		{"mismatch", func(f *RegisterForm) { f.ConfirmPassword = "Matura2026?" }, "confirmPassword", "eqfield"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.edit(&form)
			err := Validate(form)
			var inv *ErrInvalidForm
			require.ErrorAs(t, err, &inv)
			f, ok := inv.Field(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.tag, f.Tag)
			assert.NotEmpty(t, f.Message)
		})
	}
}

func TestValidateVerifyCode(t *testing.T) {
	assert.NoError(t, Validate(VerifyForm{Code: "123456"}))
	assert.Error(t, Validate(VerifyForm{Code: "12345"}))
	assert.Error(t, Validate(VerifyForm{Code: "12a456"}))
}

func TestTranslateErrors(t *testing.T) {
	msgs := TranslateErrors(Validate(EmailForm{Email: ""}))
	assert.Contains(t, msgs, "email")
}
