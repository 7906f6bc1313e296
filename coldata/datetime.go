package coldata

// DateTimeBuffer is an int64-backed core.Buffer[int64] storing epoch
// milliseconds, used for apply-to-datetime targets.
type DateTimeBuffer struct {
	values []int64
}

func NewDateTimeBuffer(size int) *DateTimeBuffer {
	return &DateTimeBuffer{values: make([]int64, size)}
}

func (b *DateTimeBuffer) Len() int { return len(b.values) }

func (b *DateTimeBuffer) Set(i int, epochMillis int64) { b.values[i] = epochMillis }

func (b *DateTimeBuffer) Values() []int64 { return b.values }

// TimeBuffer is an int64-backed core.Buffer[int64] storing nanoseconds
// since midnight, used for apply-to-time targets.
type TimeBuffer struct {
	values []int64
}

func NewTimeBuffer(size int) *TimeBuffer {
	return &TimeBuffer{values: make([]int64, size)}
}

func (b *TimeBuffer) Len() int { return len(b.values) }

func (b *TimeBuffer) Set(i int, nanosOfDay int64) { b.values[i] = nanosOfDay }

func (b *TimeBuffer) Values() []int64 { return b.values }
