// Package identity maps a staff email to a capability role. The lookup is
// backed by config allow-lists so no credentials live in code; a real
// identity provider can replace the Directory without touching the core.
package identity

import (
	"net/http"
	"strings"
)

type Role string

const (
	RoleStaff   Role = "staff"
	RoleKitchen Role = "kitchen"
	RoleAdmin   Role = "admin"
)

// Header carries the caller identity on staff devices.
const Header = "X-Staff-Email"

type Directory struct {
	kitchen map[string]struct{}
	admin   map[string]struct{}
}

func NewDirectory(kitchenEmails, adminEmails []string) *Directory {
	return &Directory{
		kitchen: toSet(kitchenEmails),
		admin:   toSet(adminEmails),
	}
}

func toSet(emails []string) map[string]struct{} {
	s := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			s[e] = struct{}{}
		}
	}
	return s
}

// RoleFor resolves the role for an email. Unknown identities are plain
// staff; admin wins when an email is on both lists.
func (d *Directory) RoleFor(email string) Role {
	e := strings.ToLower(strings.TrimSpace(email))
	if _, ok := d.admin[e]; ok {
		return RoleAdmin
	}
	if _, ok := d.kitchen[e]; ok {
		return RoleKitchen
	}
	return RoleStaff
}

// Allows reports whether role covers the required capability. Admin covers
// everything; kitchen covers kitchen and staff.
func Allows(role, required Role) bool {
	switch required {
	case RoleStaff:
		return true
	case RoleKitchen:
		return role == RoleKitchen || role == RoleAdmin
	case RoleAdmin:
		return role == RoleAdmin
	}
	return false
}

// Require guards a handler behind a capability. The identity comes from the
// X-Staff-Email header; missing or under-privileged callers get 403.
func (d *Directory) Require(required Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(Header)
		if email == "" {
			http.Error(w, "missing "+Header+" header", http.StatusForbidden)
			return
		}
		if !Allows(d.RoleFor(email), required) {
			http.Error(w, "insufficient role", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
