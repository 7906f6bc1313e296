package coldata

import "github.com/gocolx/colx/core"

// CategoricalColumn is a slice-backed core.CategoricalColumn.
type CategoricalColumn struct {
	categories []uint32
}

func NewCategoricalColumn(categories []uint32) *CategoricalColumn {
	return &CategoricalColumn{categories: categories}
}

func (c *CategoricalColumn) Size() int { return len(c.categories) }

func (c *CategoricalColumn) CategoricalReader(upTo int) core.CategoricalReader {
	return &categoricalReader{categories: c.categories[:upTo]}
}

type categoricalReader struct {
	categories []uint32
	pos        int
}

func (r *categoricalReader) SetPosition(p int) { r.pos = p }

func (r *categoricalReader) Read() uint32 {
	r.pos++
	return r.categories[r.pos]
}

// NewCategoricalBuffer allocates the packed buffer matching format, sized
// for size elements.
func NewCategoricalBuffer(format core.Format, size int) core.Buffer[uint32] {
	switch format {
	case core.UI2:
		return newCat2Buffer(size)
	case core.UI4:
		return newCat4Buffer(size)
	case core.UI8:
		return newCat8Buffer(size)
	case core.UI16:
		return newCat16Buffer(size)
	default:
		return newCat32Buffer(size)
	}
}

// Cat2Buffer packs 4 categories per byte (2 bits each). Safe for
// concurrent Set only when distinct goroutines never write within the
// same 4-index-aligned group — the alignment the parallel executor
// guarantees for every batch boundary.
type Cat2Buffer struct {
	storage []byte
	size    int
}

func newCat2Buffer(size int) *Cat2Buffer {
	return &Cat2Buffer{storage: make([]byte, (size+3)/4), size: size}
}

func (b *Cat2Buffer) Len() int { return b.size }

func (b *Cat2Buffer) Set(i int, v uint32) {
	checkCapacity(core.UI2, v)
	byteIdx := i / 4
	shift := uint(i%4) * 2
	b.storage[byteIdx] = (b.storage[byteIdx] &^ (0x3 << shift)) | byte(v&0x3)<<shift
}

func (b *Cat2Buffer) Get(i int) uint32 {
	byteIdx := i / 4
	shift := uint(i%4) * 2
	return uint32(b.storage[byteIdx]>>shift) & 0x3
}

// Cat4Buffer packs 2 categories per byte (4 bits each).
type Cat4Buffer struct {
	storage []byte
	size    int
}

func newCat4Buffer(size int) *Cat4Buffer {
	return &Cat4Buffer{storage: make([]byte, (size+1)/2), size: size}
}

func (b *Cat4Buffer) Len() int { return b.size }

func (b *Cat4Buffer) Set(i int, v uint32) {
	checkCapacity(core.UI4, v)
	byteIdx := i / 2
	shift := uint(i%2) * 4
	b.storage[byteIdx] = (b.storage[byteIdx] &^ (0xF << shift)) | byte(v&0xF)<<shift
}

func (b *Cat4Buffer) Get(i int) uint32 {
	byteIdx := i / 2
	shift := uint(i%2) * 4
	return uint32(b.storage[byteIdx]>>shift) & 0xF
}

// Cat8Buffer stores one category per byte.
type Cat8Buffer struct {
	storage []byte
}

func newCat8Buffer(size int) *Cat8Buffer {
	return &Cat8Buffer{storage: make([]byte, size)}
}

func (b *Cat8Buffer) Len() int { return len(b.storage) }

func (b *Cat8Buffer) Set(i int, v uint32) {
	checkCapacity(core.UI8, v)
	b.storage[i] = byte(v)
}

func (b *Cat8Buffer) Get(i int) uint32 { return uint32(b.storage[i]) }

// Cat16Buffer stores one category per uint16.
type Cat16Buffer struct {
	storage []uint16
}

func newCat16Buffer(size int) *Cat16Buffer {
	return &Cat16Buffer{storage: make([]uint16, size)}
}

func (b *Cat16Buffer) Len() int { return len(b.storage) }

func (b *Cat16Buffer) Set(i int, v uint32) {
	checkCapacity(core.UI16, v)
	b.storage[i] = uint16(v)
}

func (b *Cat16Buffer) Get(i int) uint32 { return uint32(b.storage[i]) }

// Cat32Buffer stores one category per int32, for category counts that may
// exceed the unsigned 16-bit range.
type Cat32Buffer struct {
	storage []int32
}

func newCat32Buffer(size int) *Cat32Buffer {
	return &Cat32Buffer{storage: make([]int32, size)}
}

func (b *Cat32Buffer) Len() int { return len(b.storage) }

func (b *Cat32Buffer) Set(i int, v uint32) {
	checkCapacity(core.SI32, v)
	b.storage[i] = int32(v)
}

func (b *Cat32Buffer) Get(i int) uint32 { return uint32(b.storage[i]) }

func checkCapacity(format core.Format, v uint32) {
	if uint64(v) >= format.MaxValues() {
		panic(&core.CapacityExceededError{Format: format, Capacity: format.MaxValues(), Value: uint64(v)})
	}
}
