package engine

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// stackHash folds a canonical encoding of the position into a 64-bit
// structural hash. Two positions hash equal exactly when they are
// logic-equivalent: same stacks, same foundation tops and liveness,
// same recognized effects, same mode. Glyphs are cosmetic and excluded.
func stackHash(tableaus []Tableau, foundations []Foundation, effects Effects, mode Mode) uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:4], v)
		d.Write(buf[:4])
	}
	writeCard := func(c Card) {
		buf[0] = c.Rank
		buf[1] = c.Element
		d.Write(buf[:2])
	}

	buf[0] = uint8(mode)
	d.Write(buf[:1])

	writeU32(uint32(len(tableaus)))
	for _, t := range tableaus {
		writeU32(uint32(len(t)))
		for _, c := range t {
			writeCard(c)
		}
	}

	writeU32(uint32(len(foundations)))
	for _, f := range foundations {
		writeU32(uint32(len(f.Cards)))
		for _, c := range f.Cards {
			writeCard(c)
		}
		if f.Disabled() {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
		d.Write(buf[:1])
	}

	writeU32(uint32(len(effects)))
	for _, fx := range effects {
		buf[0] = uint8(fx.Kind)
		buf[1] = uint8(fx.Side)
		d.Write(buf[:2])
		writeU32(uint32(int32(fx.Magnitude)))
	}

	return d.Sum64()
}

// PositionKey returns the analysis identity key for a position: the
// structural hash, hex-encoded. It changes exactly when the analyzed
// input changes, which is what external animation and cache layers key
// on.
func PositionKey(tableaus []Tableau, foundations []Foundation, effects Effects, mode Mode) string {
	return strconv.FormatUint(stackHash(tableaus, foundations, effects, mode), 16)
}
