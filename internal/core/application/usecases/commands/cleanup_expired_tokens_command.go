package commands

import (
	"errors"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

var ErrCleanupExpiredTokensCommandIsNotConstructed = errors.New(
	"CleanupExpiredTokensCommand must be created via NewCleanupExpiredTokensCommand constructor",
)

// CleanupExpiredTokensCommand sweeps delivery tokens that are both expired
// and unused. Hygiene only: redemption always re-checks expiry, so security
// never depends on this sweep running.
type CleanupExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupExpiredTokensCommand creates a parameterless sweep command.
func NewCleanupExpiredTokensCommand() CleanupExpiredTokensCommand {
	return CleanupExpiredTokensCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CleanupExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrCleanupExpiredTokensCommandIsNotConstructed)
}
