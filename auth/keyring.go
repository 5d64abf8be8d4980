// Package auth provides a high-level API for persisting and retrieving the catalog API key from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "ytgrab-cli"
	user    = "catalog-api-key"
)

// SetAPIKey persists the catalog API key to the system keyring.
func SetAPIKey(apiKey string) error {
	return keyring.Set(service, user, apiKey)
}

// GetAPIKey retrieves the catalog API key from the system keyring.
func GetAPIKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteAPIKey removes the catalog API key from the system keyring.
func DeleteAPIKey() error {
	return keyring.Delete(service, user)
}
