// internal/auth/directory.go
package auth

import (
	"strings"

	"facilityhub/internal/models"
	"facilityhub/internal/store"
)

// Directory authenticates logins against the seeded user collection and a
// single shared secret. It stands in for an external identity provider;
// the user store is the source of who exists, the secret hash is the only
// credential.
type Directory struct {
	users      *store.Store[models.User, models.UserPatch]
	secretHash string // argon2id PHC
}

func NewDirectory(users *store.Store[models.User, models.UserPatch], secretHash string) *Directory {
	return &Directory{users: users, secretHash: secretHash}
}

// Authenticate resolves email+secret to a user. Unknown email and wrong
// secret both come back as ErrInvalidCredentials so callers cannot tell
// which check failed.
func (d *Directory) Authenticate(email, secret string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || secret == "" {
		return models.User{}, models.ErrInvalidCredentials
	}
	var found *models.User
	for _, u := range d.users.List() {
		if strings.ToLower(u.Email) == email {
			found = &u
			break
		}
	}
	// Verify even when the email is unknown to keep timing flat.
	ok := VerifyPassword(secret, d.secretHash)
	if found == nil || !ok {
		return models.User{}, models.ErrInvalidCredentials
	}
	return *found, nil
}
