package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts file and view from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if file := GetFile(ctx); file != "" {
		e.Str("file", file)
	}

	if view := GetView(ctx); view != "" {
		e.Str("view", view)
	}
}
