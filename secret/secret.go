// Package secret keeps sensitive configuration values, like a payment PIN,
// from accidentally being printed, logged, or serialised.
package secret

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
)

const mask = "******"

func New(secret string) Secret {
	return Secret{secret: &secret}
}

// Secret prevents accidentally exposing
// any data you did not want to expose by masking it.
type Secret struct {
	// secret being a pointer does make it harder to access the value.
	// It is still possible by directly accessing the memory address.
	secret *string
}

var _ slog.LogValuer = Secret{}

// Secret returns the actual value of the Secret.
func (s Secret) Secret() string {
	if s.secret == nil {
		return ""
	}

	return *s.secret
}

// Matches reports whether guess equals the secret, in constant time.
func (s Secret) Matches(guess string) bool {
	if s.secret == nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(*s.secret), []byte(guess)) == 1
}

func (s Secret) String() string {
	return mask
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(mask)
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(mask) //nolint:wrapcheck // export the underlying error
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var des string
	if err := json.Unmarshal(data, &des); err != nil {
		return err //nolint:wrapcheck // export the underlying error
	}

	s.secret = &des

	return nil
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(mask), nil
}

func (s *Secret) UnmarshalText(data []byte) error {
	text := string(data)
	s.secret = &text

	return nil
}
