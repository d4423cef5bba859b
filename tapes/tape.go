package tapes

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Tape is an infinite tape of symbols indexed by integers.
// Only non-blank cells are stored.
type Tape struct {
	cells map[int]Symbol
	left  int
	right int
	// bounds must be recomputed before use
	dirty bool
}

// New returns a tape with input written starting from index 0.
func New(input string) *Tape {
	t := &Tape{
		cells: make(map[int]Symbol),
	}
	i := 0
	for _, r := range input {
		t.Write(i, Symbol(r))
		i++
	}
	return t
}

func (t *Tape) Read(index int) Symbol {
	if s, ok := t.cells[index]; ok {
		return s
	}
	return Blank
}

func (t *Tape) Write(index int, symbol Symbol) {
	if t.cells == nil {
		t.cells = make(map[int]Symbol)
	}

	if symbol == Blank {
		if _, ok := t.cells[index]; !ok {
			return
		}
		delete(t.cells, index)
		if index == t.left || index == t.right-1 {
			t.dirty = true
		}
		return
	}

	if len(t.cells) == 0 && !t.dirty {
		t.left = index
		t.right = index + 1
	} else if !t.dirty {
		if index < t.left {
			t.left = index
		}
		if index >= t.right {
			t.right = index + 1
		}
	}
	t.cells[index] = symbol
}

// Bounds returns the minimal interval [left, right) holding every non-blank cell.
// An all-blank tape has left == right.
func (t *Tape) Bounds() (left, right int) {
	if t.dirty {
		t.recompute()
	}
	if len(t.cells) == 0 {
		return 0, 0
	}
	return t.left, t.right
}

func (t *Tape) recompute() {
	t.dirty = false
	if len(t.cells) == 0 {
		t.left, t.right = 0, 0
		return
	}
	first := true
	for i := range t.cells {
		if first {
			t.left, t.right = i, i+1
			first = false
			continue
		}
		t.left = min(t.left, i)
		t.right = max(t.right, i+1)
	}
}

// Len returns the number of non-blank cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells iterates non-blank cells in index order.
func (t *Tape) Cells() iter.Seq2[int, Symbol] {
	return func(yield func(int, Symbol) bool) {
		for _, i := range slices.Sorted(maps.Keys(t.cells)) {
			if !yield(i, t.cells[i]) {
				return
			}
		}
	}
}

// Filter removes every cell whose symbol is rejected by keep and returns the number of removed cells.
func (t *Tape) Filter(keep func(Symbol) bool) int {
	n := 0
	for i, s := range t.cells {
		if !keep(s) {
			delete(t.cells, i)
			n++
		}
	}
	if n > 0 {
		t.dirty = true
	}
	return n
}

func (t *Tape) Clone() *Tape {
	return &Tape{
		cells: maps.Clone(t.cells),
		left:  t.left,
		right: t.right,
		dirty: t.dirty,
	}
}

func (t *Tape) String() string {
	left, right := t.Bounds()
	return t.span(left, right)
}

func (t *Tape) span(from, to int) string {
	var b strings.Builder
	for i := from; i < to; i++ {
		b.WriteRune(rune(t.Read(i)))
	}
	return b.String()
}

// StringWithHead is String with the cell under head wrapped in brackets.
// A head outside the bounds extends the output with blanks up to the head cell.
func (t *Tape) StringWithHead(head int) string {
	left, right := t.Bounds()
	if head < left {
		return mark(Blank) +
			strings.Repeat(Blank.String(), left-head-1) +
			t.span(left, right)
	}
	if head >= right {
		return t.span(left, right) +
			strings.Repeat(Blank.String(), head-right) +
			mark(Blank)
	}
	return t.span(left, head) +
		mark(t.Read(head)) +
		t.span(head+1, right)
}

func mark(s Symbol) string {
	return "[" + s.String() + "]"
}
