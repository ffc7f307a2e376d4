package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorMod(t *testing.T) {
	twoPi := 2 * math.Pi
	testCases := map[string]struct {
		x, m     float64
		expected float64
	}{
		"Zero":            {0, twoPi, 0},
		"InRange":         {1.5, twoPi, 1.5},
		"Negative":        {-1.5, twoPi, twoPi - 1.5},
		"AboveRange":      {twoPi + 0.25, twoPi, 0.25},
		"ManyTurnsBelow":  {-4 * twoPi, twoPi, 0},
		"NegativeModulus": {1, -3, -2},
		"ExactMultiple":   {8 * twoPi, twoPi, 0},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			got := FloorMod(tt.x, tt.m)
			assert.InDelta(t, tt.expected, got, 1e-9)
			if tt.m > 0 {
				assert.GreaterOrEqual(t, got, 0.0)
				assert.Less(t, got, tt.m)
			}
		})
	}
}

func TestFloorModFloat32(t *testing.T) {
	got := FloorMod[float32](-0.5, 2*math.Pi)
	assert.InDelta(t, 2*math.Pi-0.5, float64(got), 1e-5)
	assert.GreaterOrEqual(t, got, float32(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, 0.0, Clamp(-3.0, 0.0, 1.0))
	assert.Equal(t, 1.0, Clamp(7.0, 0.0, 1.0))
	assert.Equal(t, float32(-1), Clamp[float32](-5, -1, 1))
}

func TestScalarHelpers(t *testing.T) {
	s, c := Sincos(math.Pi / 6)
	assert.InDelta(t, 0.5, s, 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, c, 1e-12)

	assert.InDelta(t, 1.0, Tan(math.Pi/4), 1e-12)
	assert.InDelta(t, 3.0, Sqrt(9.0), 1e-12)
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, 2.5, Abs(2.5))
	assert.InDelta(t, math.Pi, DegToRad(180.0), 1e-12)
	assert.InDelta(t, math.Pi/2, float64(DegToRad[float32](90)), 1e-6)
}

func TestIdentity(t *testing.T) {
	m := [16]float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	Identity(m[:])
	for i, v := range m {
		if i%5 == 0 {
			assert.Equal(t, 1.0, v, "diagonal element %d", i)
		} else {
			assert.Zero(t, v, "off-diagonal element %d", i)
		}
	}
}

func TestMul4MatchesMathgl(t *testing.T) {
	a := [16]float32{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}
	b := [16]float32{
		17, 21, 25, 29,
		18, 22, 26, 30,
		19, 23, 27, 31,
		20, 24, 28, 32,
	}

	var got [16]float32
	Mul4(got[:], a[:], b[:])

	want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-4, "element %d", i)
	}
}

func TestMul4Identity(t *testing.T) {
	var id, m, got [16]float64
	Identity(id[:])
	m = [16]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	Mul4(got[:], id[:], m[:])
	assert.Equal(t, m, got)

	// Output may alias an input.
	Mul4(m[:], m[:], id[:])
	assert.Equal(t, got, m)
}

func TestLookAtMatchesMathgl(t *testing.T) {
	testCases := map[string]struct {
		eye, center, up [3]float32
	}{
		"Origin":    {[3]float32{0, 0, 5}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0}},
		"Offset":    {[3]float32{3, 4, 5}, [3]float32{-1, 0, 2}, [3]float32{0, 1, 0}},
		"TiltedUp":  {[3]float32{1, 2, 3}, [3]float32{4, 5, 6}, [3]float32{0.3, 0.9, 0.1}},
		"AlongAxis": {[3]float32{-7, 0, 0}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			var got [16]float32
			LookAt(got[:],
				tt.eye[0], tt.eye[1], tt.eye[2],
				tt.center[0], tt.center[1], tt.center[2],
				tt.up[0], tt.up[1], tt.up[2],
			)

			want := mgl32.LookAtV(
				mgl32.Vec3(tt.eye),
				mgl32.Vec3(tt.center),
				mgl32.Vec3(tt.up),
			)
			for i := range got {
				assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
			}
		})
	}
}

func TestInvert4MatchesMathgl(t *testing.T) {
	m := [16]float32{
		2, 0, 0, 0,
		1, 3, 0, 0,
		0, 0, 1, 0,
		4, 5, 6, 1,
	}

	var got [16]float32
	require.True(t, Invert4(got[:], m[:]))

	want := mgl32.Mat4(m).Inv()
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-4, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	var m [16]float64 // all zeros, determinant 0
	out := [16]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	before := out

	assert.False(t, Invert4(out[:], m[:]))
	assert.Equal(t, before, out, "singular input must leave the output unchanged")
}

func TestInvert4RoundTrip(t *testing.T) {
	var proj, inv, product, identity [16]float64
	Perspective(proj[:], DegToRad(60.0), 16.0/9.0, 0.1, 1000.0)
	require.True(t, Invert4(inv[:], proj[:]))

	Mul4(product[:], inv[:], proj[:])
	Identity(identity[:])
	for i := range product {
		assert.InDelta(t, identity[i], product[i], 1e-9, "element %d", i)
	}
}

// transform applies a column-major 4x4 matrix to a point and performs the
// perspective divide.
func transform(m [16]float64, x, y, z float64) (float64, float64, float64) {
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	ow := m[3]*x + m[7]*y + m[11]*z + m[15]
	return ox / ow, oy / ow, oz / ow
}

func TestPerspectiveDepthRange(t *testing.T) {
	// WebGPU clip space maps the near plane to depth 0 and the far plane to 1.
	near, far := 0.5, 100.0
	var proj [16]float64
	Perspective(proj[:], DegToRad(45.0), 1.0, near, far)

	_, _, depthNear := transform(proj, 0, 0, -near)
	assert.InDelta(t, 0.0, depthNear, 1e-9)

	_, _, depthFar := transform(proj, 0, 0, -far)
	assert.InDelta(t, 1.0, depthFar, 1e-9)

	// A centered point stays centered.
	cx, cy, _ := transform(proj, 0, 0, -10)
	assert.Zero(t, cx)
	assert.Zero(t, cy)
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))

	data := []float32{1, 2}
	buf := SliceToBytes(data)
	require.Len(t, buf, 8)

	bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	assert.Equal(t, float32(1), math.Float32frombits(bits))
}
