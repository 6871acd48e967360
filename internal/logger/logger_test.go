package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_AddsRoleField(t *testing.T) {
	l := NewLogger("test-role")

	var buf bytes.Buffer
	child := Logger{l.Output(&buf)}
	child.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"role":"test-role"`) {
		t.Errorf("expected role field in output, got: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message in output, got: %s", out)
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable
	l.Info().Msg("discarded")
	l.Error().Msg("also discarded")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(context.Background())

	l := FromContext(ctx)
	l.Info().Msg("from-context")

	if !strings.Contains(buf.String(), "from-context") {
		t.Errorf("expected message written via context logger, got: %s", buf.String())
	}
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	l := FromRequest(r)
	l.Info().Msg("from-request")

	if !strings.Contains(buf.String(), "from-request") {
		t.Errorf("expected message written via request logger, got: %s", buf.String())
	}
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var parentBuf bytes.Buffer
	parent := &Logger{zerolog.New(&parentBuf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "field")
	})

	parent.Info().Msg("parent-msg")
	if strings.Contains(parentBuf.String(), "extra") {
		t.Errorf("child field leaked into parent logger: %s", parentBuf.String())
	}
}
