package bench_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/bench"
)

// TestWriteReport pins the text layout of the report.
func TestWriteReport(t *testing.T) {
	results := []bench.Result{
		{Size: 4, Threads: 5, Sequential: 2 * time.Millisecond, Parallel: 500 * time.Microsecond},
		{Size: 50, Threads: 5, Sequential: 1500 * time.Millisecond, Parallel: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, bench.WriteReport(&buf, results))

	want := "Matrix size: 4x4\n" +
		"Single-threaded time: 0.002 seconds\n" +
		"Multi-threaded time (5 threads): 0.0005 seconds\n" +
		"Speedup: 4x\n" +
		"\n" +
		"Matrix size: 50x50\n" +
		"Single-threaded time: 1.5 seconds\n" +
		"Multi-threaded time (5 threads): 0 seconds\n" +
		"Speedup: 0x\n" +
		"\n"
	require.Equal(t, want, buf.String())
}

// TestWriteReport_Empty writes nothing for no results.
func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteReport(&buf, nil))
	require.Zero(t, buf.Len())
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

// TestWriteReport_WriterError surfaces the writer's error.
func TestWriteReport_WriterError(t *testing.T) {
	err := bench.WriteReport(failingWriter{}, []bench.Result{{Size: 1, Threads: 1}})
	require.ErrorIs(t, err, errDiskFull)
}
