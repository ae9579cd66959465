package user

import "strings"

// Registration is a validated sign-up request. Names and username are trimmed; the
// password is sent verbatim.
type Registration struct {
	username  string
	email     Email
	firstName string
	lastName  string
	password  Password
}

type RegistrationInput struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
}

func NewRegistration(in RegistrationInput) (*Registration, error) {
	username := strings.TrimSpace(in.Username)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if username == "" || firstName == "" || lastName == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, ErrMissingField
	}

	password, err := NewPassword(in.Password, in.PasswordConfirm)
	if err != nil {
		return nil, err
	}

	email, err := NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	return &Registration{
		username:  username,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		password:  password,
	}, nil
}

func (r *Registration) Username() string   { return r.username }
func (r *Registration) Email() Email       { return r.email }
func (r *Registration) FirstName() string  { return r.firstName }
func (r *Registration) LastName() string   { return r.lastName }
func (r *Registration) Password() Password { return r.password }
