package filter

import "topster-slicer/internal/matrix"

// Convolve applies k to m and returns a new matrix of the same size:
//
//	N[x][y] = Σu Σv k[u][v] * m[x-u][y-v]
//
// Offsets are backward (the kernel trails the output coordinate) and source
// coordinates before the start of either axis read as zero.
func Convolve(m *matrix.Matrix, k Kernel) *matrix.Matrix {
	w, h := m.Width(), m.Height()
	out := matrix.New(w, h)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var acc float64
			for u := 0; u < KernelSize && x-u >= 0; u++ {
				for v := 0; v < KernelSize && y-v >= 0; v++ {
					// The conversion forces rounding of the product so the
					// compiler cannot fuse it into a multiply-add.
					acc += float64(k[u][v] * m.At(x-u, y-v))
				}
			}
			out.Set(x, y, acc)
		}
	}
	return out
}
