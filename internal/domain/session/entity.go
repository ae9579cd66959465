package session

import (
	"errors"
	"strings"
	"time"
)

var ErrCredentialsRequired = errors.New("username and password are required")

// Session is a snapshot of who is signed in. IsAdmin is only ever true while Authenticated.
type Session struct {
	Status            Status
	Username          string
	IsAdmin           bool
	PrivilegeResolved bool
	TokenExpiresAt    *time.Time
	Revision          uint64
}

// ShowNavigation reports whether the navigation bar is visible.
func (s Session) ShowNavigation() bool {
	return s.Username != ""
}

type Credentials struct {
	Username string
	Password string
}

// NewCredentials trims the username; both fields are required.
func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrCredentialsRequired
	}
	return Credentials{Username: username, Password: password}, nil
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Identity is what the identity endpoint reports about the token holder.
type Identity struct {
	ID          int64
	Username    string
	IsStaff     bool
	IsSuperuser bool
}

func (i Identity) IsAdmin() bool {
	return DeriveIsAdmin(i.IsStaff, i.IsSuperuser)
}

// DeriveIsAdmin grants administration when either flag is set.
func DeriveIsAdmin(isStaff, isSuperuser bool) bool {
	return isStaff || isSuperuser
}
