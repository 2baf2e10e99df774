package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single admin account, configured through the
// environment. Password may hold either the plain password or a bcrypt hash.
type Credentials struct {
	Email    string
	Password string
}

// Check reports whether email and password match the configured pair. An
// unconfigured pair matches nothing.
func (c Credentials) Check(email, password string) bool {
	if c.Email == "" || c.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) == 1

	var passwordOK bool
	if isBcryptHash(c.Password) {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}
	return emailOK && passwordOK
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
