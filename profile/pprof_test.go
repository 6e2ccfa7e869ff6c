//go:build pprof

package profile

import (
	"testing"
)

func TestModes(t *testing.T) {
	if got := len(Modes()); got != len(modes) {
		t.Errorf("len(Modes()) = %d, want %d", got, len(modes))
	}
}

func TestProfiler_options(t *testing.T) {
	tests := []struct {
		name string
		p    Profiler
		want int
	}{
		{"unknown", Profiler{Mode: "nope"}, 0},
		{"mode only", Profiler{Mode: "cpu"}, 2},
		{"with path", Profiler{Mode: "cpu", Path: "/tmp"}, 3},
		{"quiet", Profiler{Mode: "heap", Path: "/tmp", Quiet: true}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.p.options()); got != tt.want {
				t.Errorf("len(options()) = %d, want %d", got, tt.want)
			}
		})
	}
}
