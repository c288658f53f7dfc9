package bench_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matbench/bench"
)

func TestDescribeHost(t *testing.T) {
	h := bench.DescribeHost()

	assert.Equal(t, runtime.GOOS, h.GOOS)
	assert.Equal(t, runtime.GOARCH, h.GOARCH)
	assert.Positive(t, h.NumCPU)
	assert.Equal(t, runtime.GOMAXPROCS(0), h.GOMAXPROCS)
	assert.Len(t, h.Fields(), 5)
}
