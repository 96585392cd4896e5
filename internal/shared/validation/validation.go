// Package validation centralizes every field rule in one place.
// Both the HTTP handlers and the usecases validate through these functions,
// so transport-level checks and store-level expectations cannot drift apart.
// Every validator evaluates all of its rules and returns the full list of
// violations instead of stopping at the first one.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field limits shared by the transport DTOs and the store models.
// Lengths count characters, not bytes.
const (
	NameMinLen    = 2
	NameMaxLen    = 50
	PasswordMin   = 6
	BioMaxLen     = 200
	GenreMaxLen   = 50
	TitleMinLen   = 3
	TitleMaxLen   = 100
	ContentMinLen = 10
	ContentMaxLen = 5000
	GameNameMax   = 100
	RatingMin     = 1
	RatingMax     = 10
)

var emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// IsValidEmail reports whether s has a valid address form.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsTagViolation reports whether a gin binding error is a field-rule
// violation rather than a malformed body. Handlers let tag violations fall
// through to the validators below, which report every violated rule at once
// instead of gin's first-failure message.
func IsTagViolation(err error) bool {
	var vErrs validator.ValidationErrors
	return errors.As(err, &vErrs)
}

// Register validates the registration fields and returns every violation.
func Register(name, email, password string) []string {
	var errs []string

	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errs = append(errs, "name is required")
	case utf8.RuneCountInString(trimmed) < NameMinLen:
		errs = append(errs, "name must be at least 2 characters")
	case utf8.RuneCountInString(trimmed) > NameMaxLen:
		errs = append(errs, "name cannot exceed 50 characters")
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, "email is required")
	} else if !IsValidEmail(strings.TrimSpace(email)) {
		errs = append(errs, "please provide a valid email address")
	}

	switch {
	case password == "":
		errs = append(errs, "password is required")
	case utf8.RuneCountInString(password) < PasswordMin:
		errs = append(errs, "password must be at least 6 characters")
	}

	return errs
}

// Login validates the login fields. Only presence is checked here; a
// malformed address simply fails to match any account, and whether the
// credentials match is the usecase's concern.
func Login(email, password string) []string {
	var errs []string
	if strings.TrimSpace(email) == "" {
		errs = append(errs, "email is required")
	}
	if password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// ChangePassword validates a password change request.
func ChangePassword(current, next string) []string {
	var errs []string
	if current == "" {
		errs = append(errs, "current password is required")
	}
	switch {
	case next == "":
		errs = append(errs, "new password is required")
	case utf8.RuneCountInString(next) < PasswordMin:
		errs = append(errs, "password must be at least 6 characters")
	}
	return errs
}

// ProfileUpdate validates a partial profile update. Nil fields were not
// supplied and are skipped entirely.
func ProfileUpdate(name, bio, favoriteGenre *string) []string {
	var errs []string
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if utf8.RuneCountInString(trimmed) < NameMinLen {
			errs = append(errs, "name must be at least 2 characters")
		} else if utf8.RuneCountInString(trimmed) > NameMaxLen {
			errs = append(errs, "name cannot exceed 50 characters")
		}
	}
	if bio != nil && utf8.RuneCountInString(*bio) > BioMaxLen {
		errs = append(errs, "bio cannot exceed 200 characters")
	}
	if favoriteGenre != nil && utf8.RuneCountInString(*favoriteGenre) > GenreMaxLen {
		errs = append(errs, "favorite genre cannot exceed 50 characters")
	}
	return errs
}

// Review validates the fields of a new review and returns every violation.
func Review(title, content, gameName string, rating *float64, platform, genre *string) []string {
	var errs []string

	t := strings.TrimSpace(title)
	switch {
	case t == "":
		errs = append(errs, "review title is required")
	case utf8.RuneCountInString(t) < TitleMinLen:
		errs = append(errs, "title must be at least 3 characters")
	case utf8.RuneCountInString(t) > TitleMaxLen:
		errs = append(errs, "title cannot exceed 100 characters")
	}

	ct := strings.TrimSpace(content)
	switch {
	case ct == "":
		errs = append(errs, "review content is required")
	case utf8.RuneCountInString(ct) < ContentMinLen:
		errs = append(errs, "content must be at least 10 characters")
	case utf8.RuneCountInString(ct) > ContentMaxLen:
		errs = append(errs, "content cannot exceed 5000 characters")
	}

	g := strings.TrimSpace(gameName)
	switch {
	case g == "":
		errs = append(errs, "game name is required")
	case utf8.RuneCountInString(g) > GameNameMax:
		errs = append(errs, "game name cannot exceed 100 characters")
	}

	if rating == nil {
		errs = append(errs, "rating is required")
	} else if *rating < RatingMin || *rating > RatingMax {
		errs = append(errs, "rating must be a number between 1 and 10")
	}

	errs = append(errs, reviewOptional(platform, genre)...)
	return errs
}

// ReviewUpdate validates a partial review update. Nil fields were not
// supplied and are skipped.
func ReviewUpdate(title, content, gameName *string, rating *float64, platform, genre *string) []string {
	var errs []string
	if title != nil {
		t := strings.TrimSpace(*title)
		if utf8.RuneCountInString(t) < TitleMinLen {
			errs = append(errs, "title must be at least 3 characters")
		} else if utf8.RuneCountInString(t) > TitleMaxLen {
			errs = append(errs, "title cannot exceed 100 characters")
		}
	}
	if content != nil {
		ct := strings.TrimSpace(*content)
		if utf8.RuneCountInString(ct) < ContentMinLen {
			errs = append(errs, "content must be at least 10 characters")
		} else if utf8.RuneCountInString(ct) > ContentMaxLen {
			errs = append(errs, "content cannot exceed 5000 characters")
		}
	}
	if gameName != nil {
		g := strings.TrimSpace(*gameName)
		if g == "" {
			errs = append(errs, "game name is required")
		} else if utf8.RuneCountInString(g) > GameNameMax {
			errs = append(errs, "game name cannot exceed 100 characters")
		}
	}
	if rating != nil && (*rating < RatingMin || *rating > RatingMax) {
		errs = append(errs, "rating must be a number between 1 and 10")
	}
	errs = append(errs, reviewOptional(platform, genre)...)
	return errs
}

func reviewOptional(platform, genre *string) []string {
	var errs []string
	if platform != nil && utf8.RuneCountInString(*platform) > GenreMaxLen {
		errs = append(errs, "platform cannot exceed 50 characters")
	}
	if genre != nil && utf8.RuneCountInString(*genre) > GenreMaxLen {
		errs = append(errs, "genre cannot exceed 50 characters")
	}
	return errs
}
