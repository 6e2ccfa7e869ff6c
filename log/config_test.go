package log

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{" debug ", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"warn+2", Level(6)},
		{"verbose", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" Text ", FormatText},
		{"xml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevels_Formats(t *testing.T) {
	if got := slices.Collect(Levels()); !slices.Equal(got,
		[]string{"trace", "debug", "info", "warn", "error"}) {
		t.Errorf("Levels() = %v", got)
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}

	if got := Level(3).String(); got != "Level(3)" {
		t.Errorf("Level(3).String() = %q", got)
	}
}

func TestLevelName(t *testing.T) {
	if got := levelName(-8); got != "TRACE" {
		t.Errorf("levelName(trace) = %q, want TRACE", got)
	}

	if got := levelName(2); got != "INFO+2" {
		t.Errorf("levelName(2) = %q, want INFO+2", got)
	}
}

func TestConfig_Options(t *testing.T) {
	c := makeConfig(nil,
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
	)

	if c.level != LevelDebug || c.format != FormatJSON || !c.caller || c.pretty {
		t.Errorf("config = %+v", c)
	}

	if c.output == nil {
		t.Error("nil output was not replaced")
	}

	d := c.with(WithLevel(LevelError))
	if d.level != LevelError || c.level != LevelDebug {
		t.Errorf("with() levels = %v, %v, want error, debug", d.level, c.level)
	}
}

func TestTimeFormatter(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"rfc3339", "RFC3339", "2023-10-15T14:30:45Z"},
		{"rfc3339 nano", "rfc3339-nano", "2023-10-15T14:30:45.123456789Z"},
		{"kitchen", "Kitchen", "2:30PM"},
		{"datetime", "DateTime", "2023-10-15 14:30:45"},
		{"custom", "2006/01/02", "2023/10/15"},
		{"unknown name is a literal layout", "UNKNOWN", "UNKNOWN"},
		{"none", "none", ""},
		{"empty", "", ""},
		{"blank", "  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeFormatter(tt.layout)(now); got != tt.want {
				t.Errorf("timeFormatter(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}

func TestConfig_DefaultTimeLayout(t *testing.T) {
	c := makeConfig(nil)
	now := time.Now()

	if got := c.formatTime(now); got != now.Format(time.RFC3339) {
		t.Errorf("default formatTime() = %q", got)
	}

	if !strings.Contains(DefaultTimeLayout, "2006") {
		t.Errorf("DefaultTimeLayout = %q", DefaultTimeLayout)
	}
}

func BenchmarkTimeFormatter(b *testing.B) {
	format := timeFormatter("RFC3339Nano")
	now := time.Now()

	for b.Loop() {
		_ = format(now)
	}
}
