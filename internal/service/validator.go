package service

import (
	"regexp"
	"strings"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

const EmailMaxLen = 255

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return entity.ErrEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) {
		return entity.ErrEmailInvalidFormat
	}

	if strings.Contains(email, "..") {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	if err := ValidateEmail(normalized); err != nil {
		return "", err
	}

	return normalized, nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return entity.ErrPasswordEmpty
	}

	return nil
}
