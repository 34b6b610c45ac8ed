package bootstrap

import (
	"context"

	"github.com/google/uuid"

	usersvc "userservice/internal/application/user"
	"userservice/internal/domain"
	"userservice/internal/logger"
)

// seedDevUser inserts a known account if it does not exist yet.
// Dev convenience only; never called outside the dev environment.
func seedDevUser(ctx context.Context, repo usersvc.UserRepo, hasher usersvc.PasswordHasher) {
	const email = "dev@local.test"

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return
	}

	hash, err := hasher.Hash("devpassword")
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("seed: hash failed")
		return
	}

	if _, err := repo.Create(ctx, domain.NewUser(uuid.NewString(), email, hash)); err != nil {
		logger.Logger.Warn().Err(err).Msg("seed: create failed")
		return
	}
	logger.Logger.Info().Str("email", email).Msg("seeded dev user")
}
