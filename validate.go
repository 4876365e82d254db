package goConsole

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email format is invalid", ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	return nil
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, maxNameLength)
	}
	return nil
}

func validateSignUp(input SignUpInput) error {
	for _, check := range []error{
		validateName("first name", input.FirstName),
		validateName("last name", input.LastName),
		validateEmail(input.Email),
		validatePassword(input.Password),
	} {
		if check != nil {
			return errors.Join(ErrSignupInvalid, check)
		}
	}
	return nil
}

// validateLogin rejects obviously unusable credentials before the
// network round trip. The check is weaker than signup validation; the
// server is the authority on whether the pair matches.
func validateLogin(email, password string) error {
	if err := validateEmail(email); err != nil {
		return errors.Join(ErrInvalidCredentials, err)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidCredentials)
	}
	return nil
}
