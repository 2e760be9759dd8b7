package log

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestInitQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, false)
	t.Cleanup(func() { Init(os.Stderr, false) })

	Info().Msg("hidden")
	Debug().Msg("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}

	Warn().Int("size", 192).Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn message missing: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "size=192") {
		t.Errorf("structured field missing: %q", buf.String())
	}
}

func TestInitVerbose(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, true)
	t.Cleanup(func() { Init(os.Stderr, false) })

	Debug().Str("backend", "raster").Msg("acquired")
	if !strings.Contains(buf.String(), "acquired") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}

func TestLReturnsSnapshot(t *testing.T) {
	var first, second bytes.Buffer
	Init(&first, false)
	t.Cleanup(func() { Init(os.Stderr, false) })

	l := L()
	Init(&second, false)
	l.Warn().Msg("before reinit")

	if !strings.Contains(first.String(), "before reinit") {
		t.Errorf("event missing from the logger it was built on: %q", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("reinit changed an existing logger: %q", second.String())
	}
}

func TestConcurrentInit(t *testing.T) {
	t.Cleanup(func() { Init(os.Stderr, false) })
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			Init(io.Discard, i%2 == 0)
		}
	}()
	for i := 0; i < 100; i++ {
		Debug().Int("i", i).Msg("tick")
	}
	<-done
}
