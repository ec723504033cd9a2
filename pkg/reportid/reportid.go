// Package reportid generates the public identifiers of incident reports.
//
// An identifier is the first 16 hex characters of
// sha256("<unix-millis>-<hex of 16 random bytes>").
package reportid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	// Length is the number of hex characters in an identifier.
	Length = 16

	entropyBytes = 16
)

// Generator produces report identifiers. The zero value is not usable; use New.
type Generator struct {
	now     func() time.Time
	entropy io.Reader
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithEntropy overrides the random source.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// New creates a Generator backed by the wall clock and crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now, entropy: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh identifier. It fails only when the entropy
// source cannot be read.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return "", fmt.Errorf("reportid: read entropy: %w", err)
	}

	seed := strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + hex.EncodeToString(buf)
	sum := sha256.Sum256([]byte(seed))

	return hex.EncodeToString(sum[:])[:Length], nil
}

// Valid reports whether s has the shape of an identifier:
// exactly 16 lowercase hex characters.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
