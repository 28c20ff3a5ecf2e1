package filter

import (
	"testing"

	"topster-slicer/internal/matrix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rgbGrid [][][3]uint8

func (g rgbGrid) Width() int  { return len(g) }
func (g rgbGrid) Height() int { return len(g[0]) }
func (g rgbGrid) RGBAt(x, y int) (r, gr, b uint8) {
	p := g[x][y]
	return p[0], p[1], p[2]
}

func TestLumaCoefficients(t *testing.T) {
	assert.Equal(t, 0.299, Luma(1, 0, 0))
	assert.Equal(t, 0.587, Luma(0, 1, 0))
	assert.Equal(t, 0.114, Luma(0, 0, 1))
	assert.Equal(t, 0.0, Luma(0, 0, 0))
	assert.InDelta(t, 255.0, Luma(255, 255, 255), 1e-9)
}

func TestGrayscaleKeepsDimensions(t *testing.T) {
	src := make(rgbGrid, 16)
	for x := range src {
		src[x] = make([][3]uint8, 32)
		for y := range src[x] {
			src[x][y] = [3]uint8{uint8(x), uint8(y), 7}
		}
	}

	m := Grayscale(src)
	require.Equal(t, 16, m.Width())
	require.Equal(t, 32, m.Height())
	assert.Equal(t, Luma(3, 20, 7), m.At(3, 20))
}

func TestConvolveKeepsDimensions(t *testing.T) {
	custom := Kernel{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}
	inputs := map[string]*matrix.Matrix{
		"1x3": matrix.FromLines([][]float64{{1, 2, 3}}),
		"3x1": matrix.FromLines([][]float64{{1}, {2}, {3}}),
		"1x1": matrix.FromLines([][]float64{{5}}),
		"5x4": matrix.New(5, 4),
	}
	kernels := map[string]Kernel{
		"gaussian": Gaussian(),
		"sobel-x":  SobelX(),
		"sobel-y":  SobelY(),
		"custom":   custom,
	}

	for mName, m := range inputs {
		for kName, k := range kernels {
			t.Run(mName+"/"+kName, func(t *testing.T) {
				out := Convolve(m, k)
				assert.Equal(t, m.Width(), out.Width())
				assert.Equal(t, m.Height(), out.Height())
			})
		}
	}
}

func TestConvolveZeroPadding(t *testing.T) {
	m := matrix.FromLines([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	blurred := Convolve(m, Gaussian())
	// Only k[0][0] lands inside the matrix at the origin.
	assert.Equal(t, 1.0/16, blurred.At(0, 0))
	// 5*k00 + 4*k01 + 2*k10 + 1*k11, the rest reads padding.
	assert.Equal(t, 21.0/16, blurred.At(1, 1))

	sobel := Convolve(m, SobelX())
	// (9 + 2*8 + 7) - (3 + 2*2 + 1)
	assert.Equal(t, 24.0, sobel.At(2, 2))
	// First row of the kernel only: 1*1.
	assert.Equal(t, 1.0, sobel.At(0, 0))
}

func TestConvolveIsBackwardLooking(t *testing.T) {
	impulse := matrix.New(4, 4)
	impulse.Set(0, 0, 1)

	out := Convolve(impulse, SobelY())
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			want := 0.0
			if u < KernelSize && v < KernelSize {
				want = SobelY()[u][v]
			}
			assert.Equal(t, want, out.At(u, v), "at (%d,%d)", u, v)
		}
	}
}

func TestConvolveDoesNotTouchInput(t *testing.T) {
	m := matrix.FromLines([][]float64{{1, 2}, {3, 4}})
	before := m.Clone()
	out := Convolve(m, Gaussian())
	out.Set(0, 0, 100)
	assert.True(t, m.Equal(before))
}

func TestKernelBank(t *testing.T) {
	tests := []struct {
		name string
		k    Kernel
		want Kernel
	}{
		{"gaussian", Gaussian(), Kernel{{1.0 / 16, 2.0 / 16, 1.0 / 16}, {2.0 / 16, 4.0 / 16, 2.0 / 16}, {1.0 / 16, 2.0 / 16, 1.0 / 16}}},
		{"sobel-x", SobelX(), Kernel{{1, 2, 1}, {0, 0, 0}, {-1, -2, -1}}},
		{"sobel-y", SobelY(), Kernel{{1, 0, -1}, {2, 0, -2}, {1, 0, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.k)
		})
	}
}

func TestKernelBankIsReadOnly(t *testing.T) {
	k := Gaussian()
	k[1][1] = 42
	assert.Equal(t, 0.25, Gaussian()[1][1])

	sx := SobelX()
	sx[0][0] = 0
	assert.Equal(t, 1.0, Convolve(matrix.FromLines([][]float64{{1}}), SobelX()).At(0, 0))
}
