// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the unexported row kernel and the kernel-injectable parallel
//     driver to matrix_test ONLY (this file is compiled for tests only).
//   - Lets tests force a worker failure without widening the production API.

// MulRows_TestOnly forwards to the private mulRows kernel.
func MulRows_TestOnly[T Element](a, b, c *Dense[T], ch Chunk) {
	mulRows(a, b, c, ch)
}

// MulParallelWithKernel_TestOnly runs MulParallel with a caller-supplied
// row kernel.
func MulParallelWithKernel_TestOnly[T Element](
	a, b *Dense[T],
	numThreads int,
	kernel func(a, b, c *Dense[T], ch Chunk),
) (*Dense[T], error) {
	return mulParallel(a, b, numThreads, rowKernel[T](kernel))
}
