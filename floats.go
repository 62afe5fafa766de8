package transmute

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/wippyai/transmute/internal/cast"
)

// A signaling NaN carries a cleared quiet bit. Setting the bit keeps the
// payload while making the value inert in later arithmetic.
const (
	quietBit32 = 0x0040_0000
	quietBit64 = 0x0008_0000_0000_0000
)

// Quiet returns f with the NaN quiet bit set when f is a signaling NaN,
// and f unchanged otherwise. The payload bits survive. Useful after
// viewing untrusted bytes as floats, where a crafted signaling NaN could
// trap in downstream arithmetic.
//
// All work happens on the bit representation; the value never passes
// through floating-point operations that could alter it.
func Quiet[F constraints.Float](f F) F {
	if cast.Size[F]() == 4 {
		bits := math.Float32bits(float32(f))
		if isNaN32(bits) && bits&quietBit32 == 0 {
			return F(math.Float32frombits(bits | quietBit32))
		}
		return f
	}

	bits := math.Float64bits(float64(f))
	if isNaN64(bits) && bits&quietBit64 == 0 {
		return F(math.Float64frombits(bits | quietBit64))
	}
	return f
}

// QuietSlice rewrites every signaling NaN in s to its quiet form in
// place. The natural companion after viewing a byte buffer as floats.
func QuietSlice[F constraints.Float](s []F) {
	for i, f := range s {
		s[i] = Quiet(f)
	}
}

func isNaN32(bits uint32) bool {
	return bits&0x7F80_0000 == 0x7F80_0000 && bits&0x007F_FFFF != 0
}

func isNaN64(bits uint64) bool {
	return bits&0x7FF0_0000_0000_0000 == 0x7FF0_0000_0000_0000 && bits&0x000F_FFFF_FFFF_FFFF != 0
}
