package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type (
	kongKey   struct{}
	outputKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongKey{}).(*kong.Context)

	return ktx
}

// WithOutput returns a new context.Context directing command output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// Source is one input read in full.
type Source struct {
	Name string
	Text string
}

// stdinSource names standard input on the command line.
const stdinSource = "-"

// fileKey identifies a file by device and inode, so that one file reached
// through different paths or symlinks is read once.
type fileKey struct {
	dev uint64
	ino uint64
}

func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// readSources reads every path in order, skipping repeats of a file already
// read. Standard input, named by "-" or by its own path, is read once and
// placed last.
func readSources(paths []string) ([]Source, error) {
	var (
		sources  = make([]Source, 0, len(paths))
		seen     = make(map[fileKey]struct{})
		hasStdin bool
	)

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, stdinOK := makeFileKey(stdinInfo)

	for _, path := range paths {
		if path == stdinSource {
			hasStdin = true

			continue
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err)
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err)
		}

		if key, ok := makeFileKey(info); ok {
			if stdinOK && key == stdinKey {
				hasStdin = true

				continue
			}

			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err)
		}

		sources = append(sources, Source{Name: path, Text: string(data)})
	}

	if hasStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err)
		}

		sources = append(sources, Source{Name: stdinSource, Text: string(data)})
	}

	return sources, nil
}

// readSource reads a single path, or standard input for "-".
func readSource(path string) (Source, error) {
	sources, err := readSources([]string{path})
	if err != nil {
		return Source{}, err
	}

	if len(sources) == 0 {
		return Source{Name: path}, nil
	}

	return sources[0], nil
}
