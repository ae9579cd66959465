package usecase

//go:generate mockgen -source=guard.go -destination=../../tests/mock/usecase/guard_mock.go -package=usecasemock

import (
	"context"

	"booking-console/internal/domain/session"
)

type Requirement int

const (
	RequireAuthenticated Requirement = iota
	RequireAdmin
)

type Decision int

const (
	DecisionRender Decision = iota
	// DecisionWait shows a neutral placeholder until the session settles.
	DecisionWait
	DecisionRedirectLogin
	// DecisionRedirectLanding silently downgrades a non-admin to the default view.
	DecisionRedirectLanding
)

func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionWait:
		return "wait"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectLanding:
		return "redirect_landing"
	default:
		return "unknown"
	}
}

// Decide authorizes a protected view. hasPersistedToken is only consulted before the
// session manager has started restoring; a resolved state always wins over it.
func Decide(req Requirement, s session.Session, hasPersistedToken bool) Decision {
	switch s.Status {
	case session.StatusLoading:
		return DecisionWait
	case session.StatusUninitialized:
		if hasPersistedToken {
			return DecisionWait
		}
		return DecisionRedirectLogin
	case session.StatusAuthenticated:
		if req != RequireAdmin {
			return DecisionRender
		}
		switch {
		case !s.PrivilegeResolved:
			return DecisionWait
		case s.IsAdmin:
			return DecisionRender
		default:
			return DecisionRedirectLanding
		}
	default:
		return DecisionRedirectLogin
	}
}

type AccessGuard interface {
	Check(ctx context.Context, req Requirement) (Decision, session.Session)
}

type accessGuardImpl struct {
	sessions SessionManager
}

func NewAccessGuard(sessions SessionManager) AccessGuard {
	return &accessGuardImpl{sessions: sessions}
}

func (g *accessGuardImpl) Check(ctx context.Context, req Requirement) (Decision, session.Session) {
	current := g.sessions.Current()
	hasToken := false
	if current.Status == session.StatusUninitialized {
		hasToken = g.sessions.HasPersistedToken(ctx)
	}
	return Decide(req, current, hasToken), current
}
