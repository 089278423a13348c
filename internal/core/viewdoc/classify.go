package viewdoc

import "strings"

// State is the position of a Scanner relative to its target view.
type State int

const (
	StateScanning State = iota
	StateInTableBlock
	StateInTargetView
	StateInSizeSection
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateInTableBlock:
		return "in-table-block"
	case StateInTargetView:
		return "in-target-view"
	case StateInSizeSection:
		return "in-size-section"
	default:
		return "unknown"
	}
}

// Role is the structural role of one line.
type Role int

const (
	RoleOther Role = iota
	RoleBlank
	RoleViewStart
	RoleName
	RoleSizeHeader
	RoleSizeEntry
	RoleSibling
)

func (r Role) String() string {
	switch r {
	case RoleOther:
		return "other"
	case RoleBlank:
		return "blank"
	case RoleViewStart:
		return "view-start"
	case RoleName:
		return "name"
	case RoleSizeHeader:
		return "size-header"
	case RoleSizeEntry:
		return "size-entry"
	case RoleSibling:
		return "sibling"
	default:
		return "unknown"
	}
}

// Tag is the result of classifying one line: its role and the scanner
// state before and after the line.
type Tag struct {
	Role  Role
	Prev  State
	State State
}

func inView(s State) bool {
	return s == StateInTargetView || s == StateInSizeSection
}

// Entered reports whether the line opened the target view.
func (t Tag) Entered() bool {
	return t.Prev == StateInTableBlock && t.State == StateInTargetView
}

// LeftView reports whether the line closed the target view. The line
// itself belongs to whatever follows the view.
func (t Tag) LeftView() bool {
	return inView(t.Prev) && !inView(t.State)
}

// LeftSection reports whether the line closed the target's size section.
func (t Tag) LeftSection() bool {
	return t.Prev == StateInSizeSection && t.State != StateInSizeSection
}

// Scanner classifies document lines one at a time relative to a single
// table view named View. The first view with that name wins; once it has
// been closed the scanner never enters a target again.
type Scanner struct {
	View string

	state         State
	blockIndent   int
	sectionIndent int
	visited       bool
}

// NewScanner returns a Scanner looking for the table view named view.
func NewScanner(view string) *Scanner {
	return &Scanner{View: view}
}

// State returns the current scanner state.
func (s *Scanner) State() State {
	return s.state
}

// Step classifies line and advances the scanner.
func (s *Scanner) Step(line string) Tag {
	prev := s.state
	role := s.classify(line)
	return Tag{Role: role, Prev: prev, State: s.state}
}

func (s *Scanner) classify(line string) Role {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return RoleBlank
	}
	indent := indentOf(line)

	if kind, ok := viewKind(trimmed); ok {
		s.leave()
		s.blockIndent = indent
		if kind == tableKind && !s.visited {
			s.state = StateInTableBlock
		}
		return RoleViewStart
	}

	switch s.state {
	case StateInTableBlock:
		if isComment(trimmed) {
			return RoleOther
		}
		if indent <= s.blockIndent {
			s.state = StateScanning
			return RoleOther
		}
		// The first field of the block decides whether it is the target.
		s.state = StateScanning
		if name, ok := fieldValue(trimmed, nameField); ok {
			if name == s.View {
				s.state = StateInTargetView
			}
			return RoleName
		}
		return RoleOther

	case StateInSizeSection:
		if indent > s.sectionIndent && !strings.HasPrefix(trimmed, siblingKey) {
			return RoleSizeEntry
		}
		s.state = StateInTargetView
		return s.classifyInView(trimmed, indent)

	case StateInTargetView:
		return s.classifyInView(trimmed, indent)
	}

	return RoleOther
}

func (s *Scanner) classifyInView(trimmed string, indent int) Role {
	if isComment(trimmed) {
		return RoleOther
	}
	if indent <= s.blockIndent {
		s.leave()
		return RoleOther
	}
	if trimmed == sizeHeader {
		s.state = StateInSizeSection
		s.sectionIndent = indent
		return RoleSizeHeader
	}
	if strings.HasPrefix(trimmed, siblingKey) {
		return RoleSibling
	}
	return RoleOther
}

func (s *Scanner) leave() {
	if inView(s.state) {
		s.visited = true
	}
	s.state = StateScanning
}
