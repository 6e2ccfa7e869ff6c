// Package profile provides optional runtime profiling for the ars command.
//
// Profiling is backed by [github.com/pkg/profile] and must be enabled at build
// time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and every [Profiler] is a no-op, so
// callers never need to guard their use of this package.
//
// # Modes
//
//   - allocs:    memory allocations (all allocations)
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock time
//   - cpu:       CPU time
//   - goroutine: goroutine stacks
//   - heap:      live heap allocations
//   - mem:       general memory
//   - mutex:     mutex contention
//   - thread:    thread creation
//   - trace:     execution trace
//
// # Usage
//
//	stop := profile.Profiler{Mode: "cpu", Path: "/tmp/ars"}.Start()
//	defer stop.Stop()
//
// From the command line, a lexer benchmark over a large source looks like:
//
//	ars --pprof-mode cpu --pprof-dir ./profiles lex big.pasm > /dev/null
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// With the tag, the package also imports [net/http/pprof], registering its
// handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
