//go:build unit || e2e

package builder

import (
	"booking-console/internal/domain/user"
	reqdto "booking-console/internal/handler/dto/request"
)

type RegistrationBuilder struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		Username:        "alice",
		Email:           "alice@example.com",
		FirstName:       "Alice",
		LastName:        "Liddell",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}
}

func (r *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(r)
	return r
}

func (r *RegistrationBuilder) WithPassword(password, confirm string) *RegistrationBuilder {
	r.Password = password
	r.PasswordConfirm = confirm
	return r
}

// Build methods
func (r *RegistrationBuilder) BuildInput() user.RegistrationInput {
	return user.RegistrationInput{
		Username:        r.Username,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

func (r *RegistrationBuilder) BuildDomain() (*user.Registration, error) {
	return user.NewRegistration(r.BuildInput())
}

func (r *RegistrationBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username:        r.Username,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}
