// Package session persists the bearer credential for the recipe service.
//
// The token is an opaque JWT issued by the service. Its expiry is re-derived
// from the token's own exp claim every time it is saved; a read past expiry
// reports the session as absent and purges the stored file as a side effect.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/starford/cookbook/internal/storage"
)

const fileName = "session.yaml"

// Store reads and writes the persisted session credential.
type Store struct {
	dir storage.Provider
	now func() time.Time
}

// NewStore creates a Store backed by the given state directory.
func NewStore(dir storage.Provider) *Store {
	return &Store{dir: dir, now: time.Now}
}

type record struct {
	Token     string    `yaml:"token"`
	ExpiresAt time.Time `yaml:"expires_at,omitempty"`
}

// Save persists the token together with the expiry derived from its exp
// claim. Tokens without a decodable exp claim are stored without one and
// never expire locally.
func (s *Store) Save(token string) error {
	rec := record{Token: token}
	if exp, ok := decodeExpiry(token); ok {
		rec.ExpiresAt = exp
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := s.dir.Write(fileName, data, 0o600); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// Load returns the stored token. A missing, unreadable, or expired session
// reports ok=false; the expired case also removes the stored file so no
// stale credential lingers.
func (s *Store) Load() (token string, ok bool) {
	data, err := s.dir.Read(fileName)
	if err != nil {
		return "", false
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil || rec.Token == "" {
		_ = s.Clear()
		return "", false
	}
	if !rec.ExpiresAt.IsZero() && s.now().After(rec.ExpiresAt) {
		_ = s.Clear()
		return "", false
	}
	return rec.Token, true
}

// Clear removes the persisted credential. Clearing an absent session is not
// an error.
func (s *Store) Clear() error {
	if err := s.dir.Delete(fileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

// decodeExpiry extracts the exp claim (seconds since epoch) from a JWT
// without verifying its signature. The client only needs the timestamp; the
// server remains the authority on token validity.
func decodeExpiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return time.Time{}, false
	}
	var claims struct {
		Exp float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return time.Time{}, false
	}
	sec := int64(claims.Exp)
	return time.Unix(sec, 0), true
}
