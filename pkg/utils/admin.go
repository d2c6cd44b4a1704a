package utils

import "strings"

// Admins answers "is this caller an administrator". A caller is an admin
// when its identity metadata carries an explicit admin flag, or its e-mail
// is on the configured allow-list. E-mail comparison is case-insensitive.
type Admins struct {
	emails map[string]struct{}
}

func NewAdmins(allowList []string) *Admins {
	emails := make(map[string]struct{}, len(allowList))
	for _, e := range allowList {
		emails[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &Admins{emails: emails}
}

func (a *Admins) IsAdmin(email string, metadata map[string]interface{}) bool {
	if email == "" {
		return false
	}
	if flag, ok := metadata["admin"].(bool); ok && flag {
		return true
	}
	_, ok := a.emails[strings.ToLower(email)]
	return ok
}
