package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
	pkgAuth "github.com/polkiloo/pricecompare/internal/pkg/auth"
)

// AdminEmails lists addresses that receive the admin role on registration.
type AdminEmails []string

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdate changes only the fields that are set.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	admins map[string]struct{}
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, admins AdminEmails) *AuthUseCase {
	set := make(map[string]struct{}, len(admins))
	for _, email := range admins {
		if normalized, err := NormalizeEmail(email); err == nil {
			set[normalized] = struct{}{}
		}
	}
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, admins: set}
}

// Register creates a customer account (or an admin one for configured emails) and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, "", err
	}
	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	role := model.RoleCustomer
	if _, ok := u.admins[email]; ok {
		role = model.RoleAdmin
	}

	usr, err := u.users.Create(ctx, model.User{Name: name, Email: email, PasswordHash: hash, Role: role})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email, err := NormalizeEmail(email)
	if err != nil || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the bearer identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Profile returns the account of the authenticated user.
func (u *AuthUseCase) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

// UpdateProfile lets users change their name, email or password. The role is never touched here.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := applyIdentity(usr, upd.Name, upd.Email); err != nil {
		return nil, err
	}

	if upd.Password != nil {
		if err := validatePassword(*upd.Password); err != nil {
			return nil, err
		}
		hash, err := u.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, err
		}
		usr.PasswordHash = hash
	}

	return u.users.Update(ctx, *usr)
}

func (u *AuthUseCase) issue(usr *model.User) (string, error) {
	token, err := u.tokens.IssueToken(pkgAuth.Claims{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func applyIdentity(usr *model.User, name, email *string) error {
	if name != nil {
		normalized, err := normalizeName(*name)
		if err != nil {
			return err
		}
		usr.Name = normalized
	}
	if email != nil {
		normalized, err := NormalizeEmail(*email)
		if err != nil {
			return err
		}
		usr.Email = normalized
	}
	return nil
}
