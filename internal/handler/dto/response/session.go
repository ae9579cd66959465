package response

import (
	"booking-console/internal/domain/session"

	"github.com/jinzhu/copier"
)

type SessionResponse struct {
	Status            string `json:"status"`
	Username          string `json:"username"`
	IsAdmin           bool   `json:"is_admin"`
	PrivilegeResolved bool   `json:"privilege_resolved"`
	ShowNavigation    bool   `json:"show_navigation"`
	ExpiresAt         *int64 `json:"token_expires_at,omitempty"`
	Revision          uint64 `json:"revision"`
}

func FromSession(s session.Session) (*SessionResponse, error) {
	var res SessionResponse
	if err := copier.Copy(&res, &s); err != nil {
		return nil, err
	}
	res.ShowNavigation = s.ShowNavigation()
	if s.TokenExpiresAt != nil {
		unix := s.TokenExpiresAt.Unix()
		res.ExpiresAt = &unix
	}
	return &res, nil
}

type Action struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type DashboardResponse struct {
	Greeting string   `json:"greeting"`
	Username string   `json:"username"`
	IsAdmin  bool     `json:"is_admin"`
	Actions  []Action `json:"actions"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
