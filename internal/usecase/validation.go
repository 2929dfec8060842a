package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
)

const minPasswordLength = 6

// NormalizeEmail trims and lower-cases an address and checks its syntax.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domainErrors.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: malformed email", domainErrors.ErrInvalidInput)
	}
	return email, nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domainErrors.ErrInvalidInput, minPasswordLength)
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domainErrors.ErrInvalidInput)
	}
	return name, nil
}
