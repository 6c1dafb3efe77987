package staticfifo

// FIFO is a fixed-capacity, single-producer, single-consumer ring buffer.
//
// One slot of the backing storage is always kept free so that a full FIFO can
// be told apart from an empty one using only the two positions. A FIFO over N
// slots therefore holds at most N-1 elements.
//
// The zero FIFO has no storage and must be set up with Init before use. Until
// then it reports itself empty, and Full and Put panic.
type FIFO[T any] struct {
	data     []T
	readPos  int
	writePos int
}

// New creates a FIFO backed by size zero-valued slots, allocated once.
// The usable capacity is size-1. New panics if size is less than 1.
func New[T any](size int) *FIFO[T] {
	if size < 1 {
		panic("staticfifo: size must be at least 1")
	}
	return &FIFO[T]{
		data: make([]T, size),
	}
}

// Init resets f to an empty FIFO over storage. The storage is used in place,
// so a FIFO declared as a package-level or local variable needs no heap
// allocation. Existing slot contents are left as they are.
// Init panics if storage is empty.
func (f *FIFO[T]) Init(storage []T) {
	if len(storage) < 1 {
		panic("staticfifo: storage must have at least 1 slot")
	}
	f.data = storage
	f.readPos = 0
	f.writePos = 0
}

// Empty reports whether the FIFO holds no elements.
func (f *FIFO[T]) Empty() bool {
	return f.readPos == f.writePos
}

// Full reports whether a Put would fail.
// It panics if f has not been initialized.
func (f *FIFO[T]) Full() bool {
	if len(f.data) == 0 {
		panic("staticfifo: use of uninitialized FIFO")
	}
	return (f.writePos+1)%len(f.data) == f.readPos
}

// Len returns the number of elements currently stored.
func (f *FIFO[T]) Len() int {
	if f.readPos > f.writePos {
		return (len(f.data) - f.readPos) + f.writePos
	}
	return f.writePos - f.readPos
}

// MaxLen returns the length of the backing storage, including the reserved
// slot. The most elements the FIFO can hold is MaxLen()-1.
func (f *FIFO[T]) MaxLen() int {
	return len(f.data)
}

// Get removes and returns the oldest element.
// It returns ErrEmpty, and leaves f untouched, if there is nothing to read.
func (f *FIFO[T]) Get() (T, error) {
	if f.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	v := f.data[f.readPos]
	f.readPos = (f.readPos + 1) % len(f.data)
	return v, nil
}

// Put appends v.
// It returns ErrFull, and leaves f untouched, if there is no free slot.
func (f *FIFO[T]) Put(v T) error {
	if f.Full() {
		return ErrFull
	}
	f.data[f.writePos] = v
	f.writePos = (f.writePos + 1) % len(f.data)
	return nil
}
