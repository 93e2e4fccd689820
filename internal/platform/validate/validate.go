// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
)

var (
	// slugRegex matches slug format: letters, digits, hyphens, underscores.
	slugRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// instagramURLRegex matches a full Instagram profile URL.
	instagramURLRegex = regexp.MustCompile(`^https?://(www\.)?instagram\.com/[a-zA-Z0-9._]+/?$`)
	// instagramHandleRegex matches a bare or @-prefixed handle.
	instagramHandleRegex = regexp.MustCompile(`^@?[a-zA-Z0-9._]{1,30}$`)

	// videoURLRegexes match the embeddable video hosts the gallery supports.
	videoURLRegexes = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`),
		regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
		regexp.MustCompile(`^https?://(www\.)?vimeo\.com/\d+`),
	}

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// reservedSlugs are path segments the site router owns. An artist slug equal
// to one of these would shadow a static route.
var reservedSlugs = map[string]bool{
	"admin":        true,
	"api":          true,
	"data":         true,
	"public":       true,
	"src":          true,
	"node_modules": true,
}

// MaxSlugLen caps artist slugs, which become directory names in media storage.
const MaxSlugLen = 100

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Slug fails if the value is not a usable artist slug.
//
// # Format
//
// Slugs may contain letters, digits, hyphens, and underscores, up to
// [MaxSlugLen] characters. Names that collide with site routes are rejected.
func (v *Validator) Slug(field, value string) *Validator {
	switch {
	case !slugRegex.MatchString(value):
		v.add(field, "Must contain only letters, digits, hyphens, and underscores")
	case utf8.RuneCountInString(value) > MaxSlugLen:
		v.add(field, fmt.Sprintf("Maximum %d characters", MaxSlugLen))
	case reservedSlugs[strings.ToLower(value)]:
		v.add(field, "This name is reserved")
	}
	return v
}

// Instagram fails if the value is neither a profile URL nor a handle.
// Empty values pass; pair with [Validator.Required] when the field is mandatory.
func (v *Validator) Instagram(field, value string) *Validator {
	if value == "" {
		return v
	}
	if !instagramURLRegex.MatchString(value) && !instagramHandleRegex.MatchString(value) {
		v.add(field, "Must be an Instagram handle or profile URL")
	}
	return v
}

// VideoURL fails if the value is not a YouTube or Vimeo link.
// Empty values pass.
func (v *Validator) VideoURL(field, value string) *Validator {
	if value == "" {
		return v
	}
	for _, re := range videoURLRegexes {
		if re.MatchString(value) {
			return v
		}
	}
	v.add(field, "Must be a YouTube or Vimeo URL")
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom ("worksCount", count < 0, "Must not be negative")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
