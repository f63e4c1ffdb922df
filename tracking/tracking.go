// Package tracking generates the human readable shipment codes assigned to
// parcels once their payment is confirmed.
//
// A tracking id has the form PRCL-YYYYMMDD-XXXXXXXXXXXX: a fixed prefix, the
// UTC calendar date and 48 random bits rendered as uppercase hex. At up to
// 10,000 parcels per day the chance of two ids colliding on the same day is
// about 1.8e-7.
package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
	"time"
)

// Prefix starts every tracking id
const Prefix = "PRCL"

// RandomBytes is the width of the random suffix in bytes
const RandomBytes = 6

// Generator produces tracking ids from a clock and a random source
type Generator struct {
	Now  func() time.Time
	Rand io.Reader
}

// New returns a Generator backed by the wall clock and crypto/rand
func New() *Generator {
	return &Generator{Now: time.Now, Rand: rand.Reader}
}

var defaultGenerator = New()

// NewID returns a fresh tracking id
func NewID() string {
	return defaultGenerator.Generate()
}

// Generate returns a fresh tracking id
func (g *Generator) Generate() string {
	date := g.Now().UTC().Format("20060102")

	b := make([]byte, RandomBytes)
	if _, err := io.ReadFull(g.Rand, b); err != nil {
		rand.Read(b)
	}

	return Prefix + "-" + date + "-" + strings.ToUpper(hex.EncodeToString(b))
}
