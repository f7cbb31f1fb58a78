package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const (
	registrationMaxAttempts = 3
	registrationRetryDelay  = 50 * time.Millisecond
)

type registrationService struct {
	regRepo domain.RegistrationRepository
	logger  *slog.Logger
}

// NewRegistrationService creates the seat-inventory registration engine.
// Storage contention is retried transparently up to a bounded number of
// attempts; business-rule failures are returned immediately.
func NewRegistrationService(regRepo domain.RegistrationRepository, logger *slog.Logger) domain.RegistrationService {
	return &registrationService{
		regRepo: regRepo,
		logger:  logger,
	}
}

func (s *registrationService) Register(ctx context.Context, profileID, conferenceID string) error {
	return s.withRetry(ctx, "register", func() error {
		return s.regRepo.Register(ctx, profileID, conferenceID, time.Now())
	})
}

func (s *registrationService) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	var removed bool
	err := s.withRetry(ctx, "unregister", func() error {
		var err error
		removed, err = s.regRepo.Unregister(ctx, profileID, conferenceID)
		return err
	})
	return removed, err
}

func (s *registrationService) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= registrationMaxAttempts; attempt++ {
		err = fn()
		if err == nil || !isContention(err) {
			return err
		}
		s.logger.Warn("registration contention, retrying", "op", op, "attempt", attempt, "err", err)
		if attempt < registrationMaxAttempts {
			select {
			case <-time.After(registrationRetryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("%s: %w: %s", op, domain.ErrTransient, err)
}

// isContention reports whether the error is a storage-level conflict worth
// retrying: Postgres serialization failure, deadlock, lock-not-available, or
// a dropped connection. Business-rule sentinels never match.
func isContention(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}
	return false
}
