package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLen is the bcrypt input limit.
const maxPasswordLen = 72

// Store hashes and checks passwords on top of a Repository.
type Store struct {
	repo      Repository
	cost      int
	dummyHash []byte
	logger    logging.Logger
}

// NewStore returns a Store hashing at cost, clamped to the bcrypt range.
func NewStore(repo Repository, cost int, logger logging.Logger) (*Store, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	// Compared against when the user does not exist, so unknown and known
	// usernames cost the same bcrypt work.
	secret, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &Store{
		repo:      repo,
		cost:      cost,
		dummyHash: dummy,
		logger:    logger.With("module", "credentials"),
	}, nil
}

// Register stores a new credential. It returns common.ErrDuplicateUsername
// if the username is taken.
func (s *Store) Register(ctx context.Context, username string, password []byte) error {
	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return common.ErrEmptyCredentials
	}
	if len(password) > maxPasswordLen {
		return common.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword(password, s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repo.Create(ctx, &models.Credential{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			s.logger.Info(ctx, "registration rejected: username taken", "username", username)
			return common.ErrDuplicateUsername
		}
		s.logger.Error(ctx, "registration failed", "username", username, "error", err)
		return err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// Verify reports whether password matches the stored hash for username. A
// storage failure is returned as an error and never as a match.
func (s *Store) Verify(ctx context.Context, username string, password []byte) (bool, error) {
	// bcrypt ignores input past maxPasswordLen, so a longer password could
	// match a hash made from its prefix. No stored password is that long.
	if len(password) > maxPasswordLen {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, password[:maxPasswordLen])
		return false, nil
	}

	c, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, password)
			return false, nil
		}
		s.logger.Error(ctx, "credential lookup failed", "username", username, "error", err)
		return false, err
	}

	err = bcrypt.CompareHashAndPassword(c.PasswordHash, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}
