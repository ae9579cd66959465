package usecase

//go:generate mockgen -source=registration.go -destination=../../tests/mock/usecase/registration_mock.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"

	"booking-console/internal/domain/user"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase/shared"
)

type RegistrationUseCase interface {
	Register(ctx context.Context, in user.RegistrationInput) error
}

type registrationUseCaseImpl struct {
	api    shared.AuthAPI
	logger *slog.Logger
}

func NewRegistrationUseCase(api shared.AuthAPI, logger *slog.Logger) RegistrationUseCase {
	return &registrationUseCaseImpl{api: api, logger: logger}
}

// Register validates the sign-up form locally before creating the account.
func (r *registrationUseCaseImpl) Register(ctx context.Context, in user.RegistrationInput) error {
	reg, err := user.NewRegistration(in)
	if err != nil {
		return errs.NewLocalCause(errs.ErrValidationFailed, err, registrationMessage(err))
	}

	if err := r.api.Register(ctx, reg); err != nil {
		r.logger.Warn("Registration rejected",
			slog.String("username", reg.Username()),
			slog.String("kind", errs.Kind(err)),
		)
		return err
	}

	r.logger.Info("Account created", slog.String("username", reg.Username()))
	return nil
}

func registrationMessage(err error) string {
	switch {
	case errors.Is(err, user.ErrPasswordsMismatch):
		return "Passwords do not match."
	case errors.Is(err, user.ErrPasswordTooWeak):
		return "Password must be at least 6 characters."
	case errors.Is(err, user.ErrInvalidEmail):
		return "Please enter a valid email address."
	default:
		return "Please fill in all fields."
	}
}
