// Package staticfifo provides a fixed-capacity ring buffer for code that
// cannot allocate after start-up, such as interrupt-driven drivers on
// bare-metal targets.
//
// The FIFO keeps one slot of its storage permanently free to distinguish full
// from empty without a separate counter. Size the storage one larger than the
// number of elements you need to hold. MaxLen reports the storage length, not
// the usable capacity.
//
// Storage can be allocated once with New, or supplied by the caller with Init
// so that both the FIFO and its slots live in static memory:
//
//	var (
//		rxBuf [64]byte
//		rx    staticfifo.U8
//	)
//
//	func init() { rx.Init(rxBuf[:]) }
//
// A FIFO declared this way has no storage until Init runs; calling Put on it
// before then panics.
//
// A FIFO has a single owner. It does no locking and never blocks: Put returns
// ErrFull and Get returns ErrEmpty instead of waiting. Callers that share a
// FIFO between goroutines must guard it with their own mutex.
package staticfifo
