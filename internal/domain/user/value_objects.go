package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooWeak   = errors.New("password must be at least 6 characters long")
	ErrPasswordsMismatch = errors.New("passwords do not match")
	ErrMissingField      = errors.New("all fields are required")
)

const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

// NewPassword checks the strength of password and that confirm repeats it.
func NewPassword(password, confirm string) (Password, error) {
	if password != confirm {
		return Password{}, ErrPasswordsMismatch
	}
	if len(password) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: password}, nil
}

func (p Password) Value() string {
	return p.value
}
