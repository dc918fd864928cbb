package auth

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// LoginForm is the email/password pair.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterForm is the account creation form.
type RegisterForm struct {
	Username        string `json:"username" validate:"required,min=3,max=20,username"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// VerifyForm carries the emailed verification code.
type VerifyForm struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// EmailForm is used by resend-verification and password reset.
type EmailForm struct {
	Email string `json:"email" validate:"required,email"`
}

// FieldError is one failed rule. Message is the English rendering; Tag and
// Param let callers localize.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// ErrInvalidForm lists the fields that failed validation.
type ErrInvalidForm struct {
	Fields []FieldError
}

func (e *ErrInvalidForm) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "invalid form: " + strings.Join(msgs, "; ")
}

// Field returns the first error for field, if any.
func (e *ErrInvalidForm) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

var (
	setupOnce sync.Once
	validate  *govalidator.Validate
	trans     ut.Translator
)

func validator() (*govalidator.Validate, ut.Translator) {
	setupOnce.Do(func() {
		v := govalidator.New(govalidator.WithRequiredStructEnabled())

		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("username", func(fl govalidator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("strongpassword", func(fl govalidator.FieldLevel) bool {
			return PasswordStrength(fl.Field().String()) >= MinPasswordStrength
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerMessage(v, "username", "{0} may only contain letters, digits, '_' and '-'")
		registerMessage(v, "strongpassword", "{0} is too weak")

		validate = v
	})
	return validate, trans
}

func registerMessage(v *govalidator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field())
			return msg
		},
	)
}

// Validate checks a form struct and returns *ErrInvalidForm on failure.
func Validate(form any) error {
	v, tr := validator()
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ErrInvalidForm{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: fe.Translate(tr),
		})
	}
	return out
}

// TranslateErrors maps field name to a human-readable message.
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)
	var inv *ErrInvalidForm
	if errors.As(err, &inv) {
		for _, f := range inv.Fields {
			if _, ok := fields[f.Field]; !ok {
				fields[f.Field] = f.Message
			}
		}
		return fields
	}
	fields["detail"] = err.Error()
	return fields
}
