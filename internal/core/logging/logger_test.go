package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	logger := Component("editor")
	ctx := WithView(context.Background(), "Table 1")
	logger.Info().Ctx(ctx).Msg("patched")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if cmp := logEntry["cmp"]; cmp != "editor" {
		t.Errorf("Component() cmp = %v, want %q", cmp, "editor")
	}

	if view := logEntry["view"]; view != "Table 1" {
		t.Errorf("Component() view = %v, want %q", view, "Table 1")
	}

	if msg := logEntry["message"]; msg != "patched" {
		t.Errorf("Component() message = %v, want %q", msg, "patched")
	}
}
