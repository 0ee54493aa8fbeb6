package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Keyer derives cache keys for rendered cards.
type Keyer interface {
	// CardKey returns the key of the card for username rendered with opts.
	// opts must marshal to JSON deterministically.
	CardKey(username string, opts any) string
}

// DefaultKeyer produces "card:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// CardKey implements [Keyer]. Usernames are case-insensitive.
func (DefaultKeyer) CardKey(username string, opts any) string {
	data, _ := json.Marshal([]any{strings.ToLower(username), opts})
	return "card:" + Hash(data)
}

// ScopedKeyer prefixes the keys of another Keyer. The server scopes keys by
// build version so a deploy never serves cards from an older renderer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// CardKey implements [Keyer].
func (k *ScopedKeyer) CardKey(username string, opts any) string {
	return k.prefix + k.inner.CardKey(username, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
