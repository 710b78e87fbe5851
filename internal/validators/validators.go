package validators

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password too short")
	ErrTitleTooShort    = errors.New("title too short")
	ErrContentTooShort  = errors.New("content too short")
)

const (
	MinPasswordLength = 5
	MinTitleLength    = 5
	MinContentLength  = 5
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address before validation
// or lookup. Uniqueness checks rely on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) error {
	if email == "" || len(email) > 254 {
		return ErrInvalidEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateTitle(title string) error {
	if len(strings.TrimSpace(title)) < MinTitleLength {
		return ErrTitleTooShort
	}
	return nil
}

func ValidateContent(content string) error {
	if len(strings.TrimSpace(content)) < MinContentLength {
		return ErrContentTooShort
	}
	return nil
}
