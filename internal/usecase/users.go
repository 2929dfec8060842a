package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
)

// UserUpdate is an administrative edit of an account.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *model.Role
}

// UserAdminUseCase exposes account management to administrators.
type UserAdminUseCase struct {
	users  repository.UserRepository
	carts  repository.CartRepository
	logger *slog.Logger
}

func NewUserAdminUseCase(users repository.UserRepository, carts repository.CartRepository, logger *slog.Logger) *UserAdminUseCase {
	return &UserAdminUseCase{users: users, carts: carts, logger: logger}
}

func (u *UserAdminUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

func (u *UserAdminUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateUser edits name, email and role. Tokens issued before a role change keep the old role until they expire.
func (u *UserAdminUseCase) UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyIdentity(usr, upd.Name, upd.Email); err != nil {
		return nil, err
	}

	if upd.Role != nil {
		if !upd.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domainErrors.ErrInvalidInput, *upd.Role)
		}
		usr.Role = *upd.Role
	}

	return u.users.Update(ctx, *usr)
}

// DeleteUser removes the account with its orders and drops the stored cart.
func (u *UserAdminUseCase) DeleteUser(ctx context.Context, id int64) error {
	if err := u.users.Delete(ctx, id); err != nil {
		return err
	}
	if err := u.carts.Clear(ctx, id); err != nil {
		u.logger.Warn("failed to drop cart of deleted user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
