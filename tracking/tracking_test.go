package tracking

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

var trackingIDPattern = regexp.MustCompile(`^PRCL-\d{8}-[0-9A-F]{12}$`)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestUnitGenerate(t *testing.T) {

	Convey("Given a generator with a fixed clock and random source", t, func() {
		g := &Generator{
			Now:  func() time.Time { return time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)) },
			Rand: bytes.NewReader([]byte{0x0a, 0x1b, 0x2c, 0x3d, 0x4e, 0x5f}),
		}

		Convey("Then the id carries the UTC date and the uppercase hex suffix", func() {
			So(g.Generate(), ShouldEqual, "PRCL-20260310-0A1B2C3D4E5F")
		})
	})

	Convey("Given a random source that fails", t, func() {
		g := &Generator{Now: time.Now, Rand: failingReader{}}

		Convey("Then an id is still produced", func() {
			So(trackingIDPattern.MatchString(g.Generate()), ShouldBeTrue)
		})
	})

	Convey("NewID produces well formed ids", t, func() {
		id := NewID()
		So(trackingIDPattern.MatchString(id), ShouldBeTrue)
		So(id[5:13], ShouldEqual, time.Now().UTC().Format("20060102"))
	})
}

// With 48 random bits and 10,000 ids the birthday bound puts the chance of any
// collision at roughly 1.8e-7, so a duplicate here means the generator is broken.
func TestUnitNewIDDistinctWithinADay(t *testing.T) {
	const generations = 10000

	require.GreaterOrEqual(t, RandomBytes*8, 24, "suffix must carry at least 24 random bits")

	g := New()
	day := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	g.Now = func() time.Time { return day }

	seen := make(map[string]struct{}, generations)
	for i := 0; i < generations; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate tracking id %s after %d generations", id, i)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, generations)
}
