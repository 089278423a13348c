// Package colsize orchestrates column size edits: it reads a document
// through a host, runs one core extract or patch, and writes the result
// back.
package colsize

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hay-kot/colsize/internal/core/distribute"
	"github.com/hay-kot/colsize/internal/core/logging"
	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/internal/host"
)

var (
	// ErrViewNotFound is returned when the requested view is not a table
	// view of the document.
	ErrViewNotFound = errors.New("view not found")
	// ErrNoTableViews is returned when a document has no table views.
	ErrNoTableViews = errors.New("document has no table views")
	// ErrUnknownWidth is returned when an even split has no total width.
	ErrUnknownWidth = errors.New("display width is unknown")
)

// Document is a snapshot of one view of a document.
type Document struct {
	Path    string
	View    string
	Content string
	Sizes   viewdoc.Sizes // current columnSize entries
	Columns []string      // columns listed in the view's order
}

// Initialized reports whether the view already has column sizes.
func (d Document) Initialized() bool {
	return d.Sizes.Len() > 0
}

// Seed returns the sizes to offer for editing: the current sizes followed
// by a zero width for every ordered column that has none yet.
func (d Document) Seed() viewdoc.Sizes {
	out := d.Sizes.Clone()
	if out == nil {
		out = viewdoc.Sizes{}
	}
	for _, c := range d.Columns {
		if _, ok := out.Get(c); !ok {
			out.Set(c, 0)
		}
	}
	return out
}

// Keys returns the columns a distribution applies to: the ordered columns
// when the view lists them, otherwise the keys that already have a size.
func (d Document) Keys() []string {
	if len(d.Columns) > 0 {
		return d.Columns
	}
	return d.Sizes.Keys()
}

// Result describes a completed edit.
type Result struct {
	Path    string
	View    string
	Sizes   viewdoc.Sizes // sizes now stored in the view
	Changed bool          // false when the document was already up to date
}

// Editor reads and rewrites documents through a host. Edits to the same
// path are serialized.
type Editor struct {
	host host.Host
	log  zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEditor creates a new Editor.
func NewEditor(h host.Host, log zerolog.Logger) *Editor {
	return &Editor{
		host:  h,
		log:   log,
		locks: map[string]*sync.Mutex{},
	}
}

// Open reads path and resolves the view to edit: the host's active view,
// or the first table view when the host names none.
func (e *Editor) Open(ctx context.Context, path string) (Document, error) {
	content, err := e.host.Read(path)
	if err != nil {
		return Document{}, err
	}

	view, err := resolveView(content, e.host.ActiveViewName())
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	doc := Document{
		Path:    path,
		View:    view,
		Content: content,
		Sizes:   viewdoc.Extract(content, view),
		Columns: viewdoc.Columns(content, view),
	}

	e.log.Debug().
		Ctx(e.scope(ctx, doc)).
		Int("sizes", doc.Sizes.Len()).
		Int("columns", len(doc.Columns)).
		Msg("opened document")

	return doc, nil
}

// Update writes sizes to the view. Unless replace is set, sizes are merged
// over the widths already stored.
func (e *Editor) Update(ctx context.Context, path string, sizes viewdoc.Sizes, replace bool) (Result, error) {
	unlock := e.lock(path)
	defer unlock()

	doc, err := e.Open(ctx, path)
	if err != nil {
		return Result{}, err
	}

	next := sizes
	if !replace {
		next = doc.Sizes.Merge(sizes)
	}

	return e.apply(ctx, doc, next)
}

// Distribute computes widths for the view's columns with behavior b and
// writes them. A zero p.Total is taken from the host's window width.
func (e *Editor) Distribute(ctx context.Context, path string, b distribute.Behavior, p distribute.Params) (Result, error) {
	unlock := e.lock(path)
	defer unlock()

	doc, err := e.Open(ctx, path)
	if err != nil {
		return Result{}, err
	}

	if p.Total == 0 {
		p.Total = e.host.WindowWidth()
	}
	if b == distribute.BehaviorEven && p.Total <= 0 {
		return Result{}, ErrUnknownWidth
	}

	sizes, err := distribute.Apply(b, doc.Keys(), p)
	if err != nil {
		return Result{}, err
	}

	return e.apply(ctx, doc, sizes)
}

// Reset removes the view's columnSize section.
func (e *Editor) Reset(ctx context.Context, path string) (Result, error) {
	unlock := e.lock(path)
	defer unlock()

	doc, err := e.Open(ctx, path)
	if err != nil {
		return Result{}, err
	}

	out := viewdoc.Remove(doc.Content, doc.View)
	return e.commit(ctx, doc, out, viewdoc.Sizes{})
}

func (e *Editor) apply(ctx context.Context, doc Document, sizes viewdoc.Sizes) (Result, error) {
	out := viewdoc.Patch(doc.Content, doc.View, sizes)
	if sizes.Len() == 0 {
		sizes = doc.Sizes
	}
	return e.commit(ctx, doc, out, sizes)
}

func (e *Editor) commit(ctx context.Context, doc Document, out string, sizes viewdoc.Sizes) (Result, error) {
	res := Result{
		Path:    doc.Path,
		View:    doc.View,
		Sizes:   sizes,
		Changed: out != doc.Content,
	}

	ctx = e.scope(ctx, doc)
	if !res.Changed {
		e.log.Info().Ctx(ctx).Msg("column sizes already up to date")
		return res, nil
	}

	if err := e.host.Write(doc.Path, out); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", doc.Path, err)
	}

	e.log.Info().Ctx(ctx).Int("columns", sizes.Len()).Msg("updated column sizes")
	return res, nil
}

func (e *Editor) scope(ctx context.Context, doc Document) context.Context {
	return logging.WithView(logging.WithFile(ctx, doc.Path), doc.View)
}

func (e *Editor) lock(path string) func() {
	e.mu.Lock()
	l, ok := e.locks[path]
	if !ok {
		l = &sync.Mutex{}
		e.locks[path] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func resolveView(content, active string) (string, error) {
	tables := viewdoc.TableViews(content)
	if len(tables) == 0 {
		return "", ErrNoTableViews
	}

	if active == "" {
		// Only a view whose first field is its name can be patched.
		for _, v := range tables {
			if v.Name != "" {
				return v.Name, nil
			}
		}
		return "", fmt.Errorf("%w: no table view starts with a name field", ErrViewNotFound)
	}

	for _, v := range tables {
		if v.Name == active {
			return active, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrViewNotFound, active)
}
