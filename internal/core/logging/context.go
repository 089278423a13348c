package logging

import "context"

type contextKey string

const (
	fileKey contextKey = "file"
	viewKey contextKey = "view"
)

// WithFile adds the path of the document being edited to the context.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey, path)
}

// WithView adds the name of the view being edited to the context.
func WithView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, viewKey, view)
}

// GetFile retrieves the document path from the context.
// Returns empty string if not present.
func GetFile(ctx context.Context) string {
	if v, ok := ctx.Value(fileKey).(string); ok {
		return v
	}
	return ""
}

// GetView retrieves the view name from the context.
// Returns empty string if not present.
func GetView(ctx context.Context) string {
	if v, ok := ctx.Value(viewKey).(string); ok {
		return v
	}
	return ""
}
