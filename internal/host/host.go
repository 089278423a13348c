// Package host implements the collaborator around the document core: it
// reads and writes whole documents and answers which view is active and
// how wide the display is.
package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrEmptyPath is returned when a document path is empty.
var ErrEmptyPath = errors.New("document path is empty")

// Host is everything the edit service needs from its environment.
type Host interface {
	// Read returns the whole document at path with "\n" line endings.
	Read(path string) (string, error)
	// Write replaces the whole document at path.
	Write(path, content string) error
	// ActiveViewName returns the view to edit, or "" to let the caller pick.
	ActiveViewName() string
	// WindowWidth returns the display width in pixels, or 0 when unknown.
	WindowWidth() int
}

// FSOptions configures an FS host.
type FSOptions struct {
	View      string    // active view name
	Width     int       // display width in pixels; 0 derives it from the terminal
	CharWidth int       // pixels per terminal column when deriving the width
	Backup    bool      // copy a document to <path>.bak before replacing it
	DryRun    io.Writer // when set, Write prints the document here instead
}

// FS is a Host backed by the local filesystem.
type FS struct {
	opts FSOptions

	mu   sync.Mutex
	crlf map[string]bool
}

// NewFS creates a filesystem host.
func NewFS(opts FSOptions) *FS {
	return &FS{opts: opts, crlf: map[string]bool{}}
}

// terminalColumns reports the width of the terminal on stdout.
var terminalColumns = func() (int, bool) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// Read reads the document at path. Documents using "\r\n" are normalized
// to "\n" and converted back by Write.
func (f *FS) Read(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	content := string(data)
	isCRLF := strings.Contains(content, "\r\n")

	f.mu.Lock()
	f.crlf[path] = isCRLF
	f.mu.Unlock()

	if isCRLF {
		content = strings.ReplaceAll(content, "\r\n", "\n")
	}
	return content, nil
}

// Write replaces the document at path through a temporary file and rename.
func (f *FS) Write(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}

	f.mu.Lock()
	isCRLF := f.crlf[path]
	f.mu.Unlock()

	if isCRLF {
		content = strings.ReplaceAll(content, "\n", "\r\n")
	}

	if f.opts.DryRun != nil {
		_, err := io.WriteString(f.opts.DryRun, content)
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if f.opts.Backup {
		if _, err := Backup(path); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// ActiveViewName returns the configured view name.
func (f *FS) ActiveViewName() string {
	return f.opts.View
}

// WindowWidth returns the configured width, falling back to the terminal
// width multiplied by the character width.
func (f *FS) WindowWidth() int {
	if f.opts.Width > 0 {
		return f.opts.Width
	}
	cols, ok := terminalColumns()
	if !ok || f.opts.CharWidth <= 0 {
		return 0
	}
	return cols * f.opts.CharWidth
}

// Backup copies the file at path to path+".bak", replacing an older backup.
// Returns empty string if no backup was needed (file doesn't exist).
func Backup(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	backupPath := path + ".bak"

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read existing document: %w", err)
	}

	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	return backupPath, nil
}
