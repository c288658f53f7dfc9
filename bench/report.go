// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
)

// WriteReport writes one block per result:
//
//	Matrix size: NxN
//	Single-threaded time: S seconds
//	Multi-threaded time (T threads): P seconds
//	Speedup: Xx
//
// followed by a blank line. Numbers use up to six significant digits.
func WriteReport(w io.Writer, results []Result) error {
	for _, r := range results {
		if err := writeBlock(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeBlock(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w,
		"Matrix size: %dx%d\n"+
			"Single-threaded time: %.6g seconds\n"+
			"Multi-threaded time (%d threads): %.6g seconds\n"+
			"Speedup: %.6gx\n\n",
		r.Size, r.Size,
		r.Sequential.Seconds(),
		r.Threads, r.Parallel.Seconds(),
		r.Speedup(),
	)
	return err
}
