package sessionsecret

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("sessionsecret", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 32 {
		t.Fatalf("expected default bytes 32, got %d", cfg.Bytes)
	}
}

func TestParseConfigOverride(t *testing.T) {
	fs := flag.NewFlagSet("sessionsecret", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-bytes", "48"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 48 {
		t.Fatalf("expected bytes 48, got %d", cfg.Bytes)
	}
}

func TestParseConfigBadArgs(t *testing.T) {
	fs := flag.NewFlagSet("sessionsecret", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-invalid"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunRejectsShortSecrets(t *testing.T) {
	for _, n := range []int{0, -1, minBytes - 1} {
		if err := Run(Config{Bytes: n}, &bytes.Buffer{}, bytes.NewReader(nil)); err == nil {
			t.Fatalf("expected error for %d bytes", n)
		}
	}
}

func TestRunWritesHex(t *testing.T) {
	buf := &bytes.Buffer{}
	reader := bytes.NewReader(bytes.Repeat([]byte{0xab}, minBytes))
	if err := Run(Config{Bytes: minBytes}, buf, reader); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := EnvKey + "=" + strings.Repeat("ab", minBytes)
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRunDefaultReader(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{Bytes: 32}, buf, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(got, EnvKey+"=") {
		t.Fatalf("expected env prefix, got %q", got)
	}
	if n := len(strings.TrimPrefix(got, EnvKey+"=")); n != 64 {
		t.Fatalf("expected 64 hex chars, got %d", n)
	}
}

func TestRunNilOutput(t *testing.T) {
	if err := Run(Config{Bytes: 32}, nil, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }

func TestRunReaderError(t *testing.T) {
	if err := Run(Config{Bytes: 32}, &bytes.Buffer{}, errReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
}
