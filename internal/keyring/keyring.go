// Package keyring stores secrets in the OS credential store: the Telegram
// init-data token the API authenticates with, and an optional Postgres
// connection string for shared storage.
package keyring

import (
	"errors"

	"github.com/zalando/go-keyring"

	"habitmini/internal/constants"
)

var (
	ErrNotFound           = errors.New("secret not found in keyring")
	ErrKeyringUnavailable = errors.New("system keyring unavailable")
)

func get(user string) (string, error) {
	secret, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", ErrKeyringUnavailable
	}
	return secret, nil
}

func set(user, secret string) error {
	if err := keyring.Set(constants.AppName, user, secret); err != nil {
		return ErrKeyringUnavailable
	}
	return nil
}

func del(user string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return ErrKeyringUnavailable
	}
	return nil
}

// GetInitData returns the stored Telegram init-data token.
func GetInitData() (string, error) {
	return get(constants.KeyringInitDataUser)
}

func SetInitData(token string) error {
	return set(constants.KeyringInitDataUser, token)
}

func DeleteInitData() error {
	return del(constants.KeyringInitDataUser)
}

// GetConnectionString returns the stored Postgres DSN.
func GetConnectionString() (string, error) {
	return get(constants.KeyringDSNUser)
}

func SetConnectionString(dsn string) error {
	return set(constants.KeyringDSNUser, dsn)
}

func DeleteConnectionString() error {
	return del(constants.KeyringDSNUser)
}

// IsAvailable probes the system keyring with a throwaway entry.
func IsAvailable() bool {
	const probe = "availability-probe"
	if err := keyring.Set(constants.AppName, probe, "ok"); err != nil {
		return false
	}
	_ = keyring.Delete(constants.AppName, probe)
	return true
}
