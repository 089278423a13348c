package viewdoc

// Patch returns doc with the columnSize section of the table view named
// view set to sizes. An existing section keeps its header line and has its
// entries replaced; otherwise a new section is inserted before the view's
// rowHeight field, or after the view's last line. Every other line is
// copied unchanged.
//
// Entries whose keys fail CheckKey are not written. Patch returns doc
// unchanged when the view does not exist or no writable entries remain.
func Patch(doc, view string, sizes Sizes) string {
	sizes = sizes.writable()
	if sizes.Len() == 0 {
		return doc
	}

	lines := SplitLines(doc)
	loc := Locate(lines, view)
	if !loc.Found() {
		return doc
	}

	rw := newRewriter(lines, sizes.Len()+1)

	if loc.HasSection() {
		indent := loc.EntryIndent
		if indent == "" {
			indent = leading(lines[loc.Header]) + indentUnit
		}
		rw.copyUntil(loc.Header + 1)
		rw.replaceUntil(loc.EntriesEnd, sizes.lines(indent))
	} else {
		rw.copyUntil(loc.InsertAt(lines))
		rw.insert([]string{loc.FieldIndent + sizeHeader})
		rw.insert(sizes.lines(loc.FieldIndent + indentUnit))
	}

	rw.copyRemaining()
	return JoinLines(rw.out)
}

// Remove returns doc without the columnSize section of the table view
// named view. The document is returned unchanged when there is nothing to
// remove.
func Remove(doc, view string) string {
	lines := SplitLines(doc)
	loc := Locate(lines, view)
	if !loc.HasSection() {
		return doc
	}

	rw := newRewriter(lines, 0)
	rw.copyUntil(loc.Header)
	rw.replaceUntil(loc.EntriesEnd, nil)
	rw.copyRemaining()
	return JoinLines(rw.out)
}

// rewriter copies source lines to an output buffer, allowing ranges to be
// skipped and new lines to be inserted along the way.
type rewriter struct {
	src []string
	pos int
	out []string
}

func newRewriter(src []string, extra int) *rewriter {
	return &rewriter{src: src, out: make([]string, 0, len(src)+extra)}
}

// copyUntil copies source lines [pos, i).
func (r *rewriter) copyUntil(i int) {
	r.out = append(r.out, r.src[r.pos:i]...)
	r.pos = i
}

// replaceUntil skips source lines [pos, i) and writes repl in their place.
func (r *rewriter) replaceUntil(i int, repl []string) {
	r.out = append(r.out, repl...)
	r.pos = i
}

func (r *rewriter) insert(lines []string) {
	r.out = append(r.out, lines...)
}

func (r *rewriter) copyRemaining() {
	r.out = append(r.out, r.src[r.pos:]...)
	r.pos = len(r.src)
}
