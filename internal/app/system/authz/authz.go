// internal/app/system/authz/authz.go

// Package authz is the ownership policy for owner-restricted mutations.
//
// Ownership is a single recorded attribute (createdBy / organizer / author)
// stamped at creation from the authenticated principal. Handlers must check
// existence before ownership so a nonexistent resource always reads as 404,
// never 403.
package authz

import "strings"

// CanMutate reports whether the principal may update or delete a resource
// whose owner field is owner. Principals are verified email addresses; the
// comparison folds case because mail addresses compare case-insensitively in
// practice and the identity provider does not guarantee a canonical casing.
func CanMutate(principal, owner string) bool {
	principal = strings.TrimSpace(principal)
	owner = strings.TrimSpace(owner)
	if principal == "" || owner == "" {
		return false
	}
	return strings.EqualFold(principal, owner)
}
