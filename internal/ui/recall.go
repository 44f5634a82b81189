package ui

// recall keeps the submitted lines for up/down navigation. pos indexes
// lines; len(lines) stands for the fresh line being typed.
type recall struct {
	lines []string
	pos   int
}

func (r *recall) add(line string) {
	r.lines = append(r.lines, line)
	r.pos = len(r.lines)
}

func (r *recall) reset() {
	r.pos = len(r.lines)
}

// step moves by delta and returns the line to show, empty for the fresh
// line. ok is false when the move would leave the list.
func (r *recall) step(delta int) (line string, ok bool) {
	next := r.pos + delta
	if next < 0 || next > len(r.lines) {
		return "", false
	}
	r.pos = next
	if next == len(r.lines) {
		return "", true
	}
	return r.lines[next], true
}
