package auth

import (
	"fmt"
	"unicode"

	"timebank/domain"
	"timebank/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
}

// RegistrationRequest is the profile form submitted once after sign-up.
// PhotoURL and IDCardURL point at files already uploaded to the blob store.
type RegistrationRequest struct {
	FullName  string        `validate:"required,min=2,max=120"`
	Phone     string        `validate:"required,min=10,max=20"`
	Email     string        `validate:"required,email"`
	PhotoURL  string        `validate:"required,url"`
	IDCardURL string        `validate:"required,url"`
	Role      domain.Role   `validate:"required,oneof=admin executive"`
	Slots     []domain.Slot `validate:"-"`
}

// ProfileUpdate leaves a field untouched when it is empty.
type ProfileUpdate struct {
	FullName string `validate:"omitempty,min=2,max=120"`
	Phone    string `validate:"omitempty,min=10,max=20"`
	PhotoURL string `validate:"omitempty,url"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func ValidateRegistration(req RegistrationRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidProfile, err)
	}
	return nil
}

func ValidateProfileUpdate(update ProfileUpdate) error {
	if err := validate.Struct(update); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidProfile, err)
	}
	return nil
}

// isPasswordComplex requires upper and lower case letters, a digit and a symbol.
func isPasswordComplex(s string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
