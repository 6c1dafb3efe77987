package staticfifo

type (
	// U8 is a FIFO of bytes, e.g. for a UART receive path.
	U8 = FIFO[uint8]

	// U32 is a FIFO of 32-bit words.
	U32 = FIFO[uint32]
)
