package model

import (
	"regexp"
	"strings"

	dErrors "caseflow/pkg/domain-errors"
)

// emailPattern is deliberately loose: one @, something before it, a dot in
// the domain part. Deliverability is the lead pipeline's problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Contact is populated from the contact step onward.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Consent bool   `json:"consent"`
}

// Validate enforces the contact submission guard: all fields present, consent
// given, email shaped like an email, phone carrying exactly 10 digits.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return dErrors.New(dErrors.CodeGuardRejected, "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return dErrors.New(dErrors.CodeGuardRejected, "email is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return dErrors.New(dErrors.CodeGuardRejected, "phone is required")
	}
	if !c.Consent {
		return dErrors.New(dErrors.CodeGuardRejected, "consent is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return dErrors.New(dErrors.CodeGuardRejected, "email format is invalid")
	}
	if len(digitsOf(c.Phone)) != 10 {
		return dErrors.New(dErrors.CodeGuardRejected, "phone must contain 10 digits")
	}
	return nil
}

// IsEmpty reports whether no contact data has been entered yet.
func (c Contact) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == "" && !c.Consent
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
