// Package auth persists API keys in the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const service = "cine-cli"

// Secret names a stored credential.
type Secret string

const (
	TMDB   Secret = "tmdb-api-key"
	Torbox Secret = "torbox-api-key"
)

// Set persists the secret to the system keyring.
func Set(name Secret, value string) error {
	return keyring.Set(service, string(name), value)
}

// Get retrieves the secret from the system keyring.
func Get(name Secret) (string, error) {
	return keyring.Get(service, string(name))
}

// Delete removes the secret from the system keyring.
func Delete(name Secret) error {
	return keyring.Delete(service, string(name))
}
