package colx

import (
	"fmt"
	"reflect"

	"github.com/gocolx/colx/core"
)

// Sentinel errors and value types re-exported from package core so callers
// need only import colx for the common case.
var (
	ErrNullArgument        = core.ErrNullArgument
	ErrEmptyColumns        = core.ErrEmptyColumns
	ErrUnsupportedReadMode = core.ErrUnsupportedReadMode
	ErrTypeMismatch        = core.ErrTypeMismatch
	ErrNullSupplier        = core.ErrNullSupplier
	ErrAborted             = core.ErrAborted
)

// CapacityExceededError is raised when a categorical operator produces more
// distinct values than the buffer's Format can encode.
type CapacityExceededError = core.CapacityExceededError

// PanicError wraps a recovered panic value that was not already an error.
type PanicError = core.PanicError

// Workload hints the executor about per-element cost; see core.Workload.
type Workload = core.Workload

const (
	Huge    = core.Huge
	Large   = core.Large
	Medium  = core.Medium
	Small   = core.Small
	Default = core.Default
)

// Format selects the packed integer width of a categorical buffer.
type Format = core.Format

const (
	UI2  = core.UI2
	UI4  = core.UI4
	UI8  = core.UI8
	UI16 = core.UI16
	SI32 = core.SI32
)

// Context is the execution context supplied by the caller; see core.Context.
type Context = core.Context

// ProgressFunc receives progress in [0,1], or NaN for indeterminate.
type ProgressFunc = core.ProgressFunc

// requireNonNil is the common "caller passed a nil column or operator"
// façade validation failure. Checks via reflect so a
// typed nil pointer boxed in the any parameter is still caught.
func requireNonNil(v any, what string) error {
	if v == nil {
		return fmt.Errorf("colx: %s: %w", what, core.ErrNullArgument)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return fmt.Errorf("colx: %s: %w", what, core.ErrNullArgument)
		}
	}
	return nil
}

// requireNonNegative rejects a negative maxNumberOfValues before any worker
// runs. Grouped with the other façade validation failures under
// ErrNullArgument since there is no more specific sentinel for it.
func requireNonNegative(maxNumberOfValues int, what string) error {
	if maxNumberOfValues < 0 {
		return fmt.Errorf("colx: %s must be non-negative, got %d: %w", what, maxNumberOfValues, core.ErrNullArgument)
	}
	return nil
}

// columnCounter is satisfied by every coldata Row source; core.RowSource
// itself only exposes Size and RowReader, so the façade type-asserts to
// this to recover the column count for the empty-columns check.
type columnCounter interface {
	Columns() int
}

// requireColumns rejects a row source with zero columns before any worker
// runs. Sources that don't implement columnCounter are assumed non-empty.
func requireColumns(source core.RowSource) error {
	if cc, ok := source.(columnCounter); ok && cc.Columns() == 0 {
		return fmt.Errorf("colx: source has no columns: %w", core.ErrEmptyColumns)
	}
	return nil
}
