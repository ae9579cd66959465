package request

import (
	"booking-console/internal/domain/user"
)

// LoginRequest is checked by the session manager so that a blank form gets the same
// message whichever client posts it.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"max=150"`
	Email           string `json:"email" binding:"max=254"`
	FirstName       string `json:"first_name" binding:"max=150"`
	LastName        string `json:"last_name" binding:"max=150"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password2"`
}

func (r *RegisterRequest) ToInput() user.RegistrationInput {
	return user.RegistrationInput{
		Username:        r.Username,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}
