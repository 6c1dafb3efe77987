package staticfifo

import "errors"

var (
	// ErrEmpty is returned by Get when the FIFO holds no elements.
	ErrEmpty = errors.New("staticfifo: fifo is empty")

	// ErrFull is returned by Put when every usable slot is occupied.
	ErrFull = errors.New("staticfifo: fifo is full")
)
