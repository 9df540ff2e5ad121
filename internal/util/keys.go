package util

import (
	"errors"
	"fmt"
	"strings"
)

// MaxKeyLen bounds logical keys; a namespaced storage key stays well under
// the limits of memcached-style backends.
const MaxKeyLen = 250

// ReservedKeyChars may not appear in logical keys.
const ReservedKeyChars = `{}()/\@:`

var (
	ErrEmptyKey    = errors.New("key is empty")
	ErrKeyTooLong  = errors.New("key is too long")
	ErrReservedKey = errors.New("key contains reserved characters")
)

// ValidateKey checks a logical key before it reaches a provider.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return ErrEmptyKey
	case len(key) > MaxKeyLen:
		return fmt.Errorf("%w: %d > %d bytes", ErrKeyTooLong, len(key), MaxKeyLen)
	case strings.ContainsAny(key, ReservedKeyChars):
		return fmt.Errorf("%w %q", ErrReservedKey, ReservedKeyChars)
	}
	return nil
}

// ItemKey isolates a logical key by namespace: item:<ns>:<key>.
func ItemKey(ns, key string) string {
	return "item:" + ns + ":" + key
}
