package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/pricecompare/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	adminEmails,
	NewUserLocks,
	NewAuthUseCase,
	NewUserAdminUseCase,
	NewCartUseCase,
	NewOrderUseCase,
)

func adminEmails(cfg *config.Config) AdminEmails {
	return AdminEmails(cfg.AdminEmails)
}
