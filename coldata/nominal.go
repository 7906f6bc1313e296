package coldata

import (
	"sync"

	"github.com/samber/lo"

	"github.com/gocolx/colx/core"
)

// NominalBuffer stores string categories. The UI2/UI4/UI8
// nominal flavours collapse onto one shared UI8-backed buffer — only the
// logical Format (used for the capacity check) varies; UI16- and
// SI32-width nominal output uses a Cat32Buffer instead, for the rare case
// a caller declares more than 256 possible labels.
//
// Category codes are assigned lazily the first time a label is seen,
// guarded by a mutex (the packed buffer write itself stays lock-free and
// alignment-guaranteed like any other categorical buffer; only the
// label<->code dictionary is shared mutable state).
type NominalBuffer struct {
	format core.Format
	narrow core.Buffer[uint32] // Cat8Buffer, unless format is UI16 or SI32
	size   int

	mu      sync.Mutex
	codeOf  map[string]uint32
	labelOf []string
}

// NewNominalBuffer allocates a nominal buffer sized for size elements,
// capped at format's capacity. predeclared, if non-empty, seeds the
// dictionary with known labels in order (index i gets code i), so those
// labels have fixed codes regardless of which batch sees them first. Every
// lookup, predeclared or not, still takes the dictionary lock.
func NewNominalBuffer(format core.Format, size int, predeclared ...string) *NominalBuffer {
	b := &NominalBuffer{
		format:  format,
		size:    size,
		codeOf:  make(map[string]uint32, len(predeclared)),
		labelOf: make([]string, 0, len(predeclared)),
	}
	if format == core.UI16 || format == core.SI32 {
		b.narrow = newCat32Buffer(size)
	} else {
		b.narrow = newCat8Buffer(size)
	}
	b.labelOf = lo.Map(predeclared, func(label string, i int) string {
		b.codeOf[label] = uint32(i)
		return label
	})
	return b
}

func (b *NominalBuffer) Len() int { return b.size }

// Set interns value into a category code (assigning a new one if this is
// the first time value is seen) and writes it through to the underlying
// packed buffer. Panics with *core.CapacityExceededError if value would be
// the (format.MaxValues()+1)'th distinct label.
func (b *NominalBuffer) Set(i int, value string) {
	code := b.codeFor(value)
	b.narrow.Set(i, code)
}

func (b *NominalBuffer) codeFor(value string) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if code, ok := b.codeOf[value]; ok {
		return code
	}
	code := uint32(len(b.labelOf))
	if uint64(code) >= b.format.MaxValues() {
		panic(&core.CapacityExceededError{Format: b.format, Capacity: b.format.MaxValues(), Value: uint64(code)})
	}
	b.codeOf[value] = code
	b.labelOf = append(b.labelOf, value)
	return code
}

// Labels returns the dictionary built so far, indexed by category code.
// Only safe to call after the execution that populated it has returned
// successfully.
func (b *NominalBuffer) Labels() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.labelOf))
	copy(out, b.labelOf)
	return out
}

// Decode materialises the buffer as a []string, resolving every stored
// code back to its label.
func (b *NominalBuffer) Decode() []string {
	out := make([]string, b.size)
	labels := b.Labels()
	for i := 0; i < b.size; i++ {
		var code uint32
		switch narrow := b.narrow.(type) {
		case *Cat8Buffer:
			code = narrow.Get(i)
		case *Cat32Buffer:
			code = narrow.Get(i)
		}
		out[i] = labels[code]
	}
	return out
}
