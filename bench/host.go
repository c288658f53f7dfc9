// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

// Host describes the machine a benchmark ran on.
type Host struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // detected CPU features relevant to numeric kernels
}

// DescribeHost snapshots the runtime and CPU feature flags.
// The kernels never dispatch on these flags; they only annotate results.
func DescribeHost() Host {
	h := Host{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		h.Features = appendIf(h.Features, cpu.X86.HasSSE41, "sse4.1")
		h.Features = appendIf(h.Features, cpu.X86.HasAVX, "avx")
		h.Features = appendIf(h.Features, cpu.X86.HasAVX2, "avx2")
		h.Features = appendIf(h.Features, cpu.X86.HasFMA, "fma")
		h.Features = appendIf(h.Features, cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		h.Features = appendIf(h.Features, cpu.ARM64.HasASIMD, "asimd")
		h.Features = appendIf(h.Features, cpu.ARM64.HasSVE, "sve")
		h.Features = appendIf(h.Features, cpu.ARM64.HasSVE2, "sve2")
	}

	return h
}

// Fields renders the host as zap fields.
func (h Host) Fields() []zap.Field {
	return []zap.Field{
		zap.String("goos", h.GOOS),
		zap.String("goarch", h.GOARCH),
		zap.Int("num_cpu", h.NumCPU),
		zap.Int("gomaxprocs", h.GOMAXPROCS),
		zap.Strings("cpu_features", h.Features),
	}
}

func appendIf(dst []string, ok bool, name string) []string {
	if ok {
		return append(dst, name)
	}
	return dst
}
