package disasm

// writer accumulates rendered output and emits canonical indentation at the
// start of each line. Nothing escapes the writer until the whole module has
// been decoded, so a failed decode never leaks partial text.
type writer struct {
	buf         []byte
	indentWidth int
	indentLevel int
	atLineStart bool
}

func newWriter(indentWidth int) *writer {
	if indentWidth <= 0 {
		indentWidth = defaultIndent
	}
	return &writer{
		indentWidth: indentWidth,
		atLineStart: true,
	}
}

func (w *writer) bytes() []byte {
	return w.buf
}

func (w *writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	spaceCount := w.indentLevel * w.indentWidth
	for i := 0; i < spaceCount; i++ {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

func (w *writer) writeString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

func (w *writer) writeByte(b byte) {
	w.writeIndent()
	w.buf = append(w.buf, b)
}

// newline terminates the current line if it is not already terminated.
func (w *writer) newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// blankLine unconditionally emits an empty line.
func (w *writer) blankLine() {
	w.newline()
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

func (w *writer) indentPush() {
	w.indentLevel++
}

func (w *writer) indentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
