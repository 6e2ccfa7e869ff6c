package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/ars/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// The document is a mapping from flag names to values:
//   - keys may spell the flag name with hyphens or underscores
//   - nested mappings are flattened, joining keys with hyphens
//   - numbers are passed to Kong as strings
//   - sequences are passed as lists of strings
//
// Example config file:
//
//	log:
//	  level: debug
//	  format: json
//	log_pretty: false
//
// This configuration applies to the flags:
//
//	--log-level=debug
//	--log-format=json
//	--no-log-pretty
//
// A file that cannot be decoded is reported and ignored. Command-line flags
// override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil && !errors.Is(err, io.EOF) {
			log.WarnContext(ctx, "ignoring invalid configuration",
				slog.String("error", err.Error()))

			return config{}, nil
		}

		cfg := make(config, len(doc))
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a flattened YAML mapping.
type config map[string]any

// flatten stores every scalar of m in c, keyed by its hyphen-joined path.
func (c config) flatten(prefix string, m map[string]any) {
	for key, val := range m {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := val.(type) {
		case map[string]any:
			c.flatten(name, v)

		case []any:
			list := make([]string, 0, len(v))
			for _, elem := range v {
				list = append(list, text(elem))
			}

			c[name] = list

		case nil:

		default:
			c[name] = scalar(v)
		}
	}
}

// scalar returns v as Kong expects it: booleans as-is, everything else as a
// string.
func scalar(v any) any {
	switch v := v.(type) {
	case bool:
		return v

	case string:
		return v

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case int:
		return strconv.Itoa(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	default:
		b, err := yaml.Marshal(v)
		if err != nil {
			return ""
		}

		return strings.TrimSpace(string(b))
	}
}

// text returns v formatted as a string.
func text(v any) string {
	switch s := scalar(v).(type) {
	case bool:
		return strconv.FormatBool(s)
	case string:
		return s
	default:
		return ""
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Not found; Kong uses the default.
	return nil, nil
}
