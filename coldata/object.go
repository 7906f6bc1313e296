package coldata

import "github.com/gocolx/colx/core"

// ObjectColumn is a slice-backed core.ObjectColumn[T].
type ObjectColumn[T any] struct {
	values []T
}

func NewObjectColumn[T any](values []T) *ObjectColumn[T] {
	return &ObjectColumn[T]{values: values}
}

func (c *ObjectColumn[T]) Size() int { return len(c.values) }

func (c *ObjectColumn[T]) ObjectReader(upTo int) core.ObjectReader[T] {
	return &objectReader[T]{values: c.values[:upTo]}
}

type objectReader[T any] struct {
	values []T
	pos    int
}

func (r *objectReader[T]) SetPosition(p int) { r.pos = p }

func (r *objectReader[T]) Read() T {
	r.pos++
	return r.values[r.pos]
}

// ObjectBuffer is a []T-backed core.Buffer[T].
type ObjectBuffer[T any] struct {
	values []T
}

func NewObjectBuffer[T any](size int) *ObjectBuffer[T] {
	return &ObjectBuffer[T]{values: make([]T, size)}
}

func (b *ObjectBuffer[T]) Len() int { return len(b.values) }

func (b *ObjectBuffer[T]) Set(i int, v T) { b.values[i] = v }

func (b *ObjectBuffer[T]) Values() []T { return b.values }
