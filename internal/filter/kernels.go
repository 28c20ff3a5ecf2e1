// Package filter implements the pixel-level stages of the topster pipeline:
// grayscale conversion and 3×3 convolution with a fixed kernel bank.
package filter

// KernelSize is the side length of every kernel in the bank.
const KernelSize = 3

// Reach is how many indices behind the output coordinate a kernel reads.
// A feature that ends at index e keeps registering in a convolution output
// until e+Reach-1.
const Reach = KernelSize - 1

// Kernel is a 3×3 weight grid indexed [u][v], where u offsets x and v
// offsets y. It is an array so it is always passed by value.
type Kernel [KernelSize][KernelSize]float64

// The kernel bank. The arrays are unexported and handed out by value, so
// callers always get their own copy.
var (
	gaussian = Kernel{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	}
	sobelX = Kernel{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}
	sobelY = Kernel{
		{1, 0, -1},
		{2, 0, -2},
		{1, 0, -1},
	}
)

// Gaussian returns the normalized 3×3 binomial blur.
func Gaussian() Kernel { return gaussian }

// SobelX returns the kernel that responds to intensity changes along x.
func SobelX() Kernel { return sobelX }

// SobelY returns the kernel that responds to intensity changes along y.
func SobelY() Kernel { return sobelY }
