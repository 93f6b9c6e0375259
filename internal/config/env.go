package config

import (
	"errors"
	"strings"
)

// HomeEnvVar is the environment variable the notes root is resolved from.
const HomeEnvVar = "HOME"

// ErrHomeNotSet is returned when the home directory variable is unset or empty.
var ErrHomeNotSet = errors.New("home directory is not set")

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// HomeFromEnv returns the invoking user's home directory.
// The environment is passed in so callers never read process state directly.
func HomeFromEnv(lookup LookupFunc) (string, error) {
	if lookup == nil {
		return "", ErrHomeNotSet
	}
	home, ok := lookup(HomeEnvVar)
	if !ok || strings.TrimSpace(home) == "" {
		return "", ErrHomeNotSet
	}
	return home, nil
}
