//go:build !pprof

package profile

// Modes returns nil; no profiling mode is available without the pprof tag.
func Modes() []string { return nil }

func start(Profiler) Stopper { return ignore{} }
