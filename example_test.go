package staticfifo_test

import (
	"errors"
	"fmt"

	"github.com/kb3gtn/staticfifo"
)

func ExampleFIFO() {
	f := staticfifo.New[uint32](4)

	for v := uint32(1); ; v++ {
		if err := f.Put(v * 100); errors.Is(err, staticfifo.ErrFull) {
			break
		}
	}
	fmt.Println("len", f.Len(), "max", f.MaxLen())

	for {
		v, err := f.Get()
		if errors.Is(err, staticfifo.ErrEmpty) {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// len 3 max 4
	// 100
	// 200
	// 300
}

func ExampleFIFO_Init() {
	var (
		rxBuf [8]byte
		rx    staticfifo.U8
	)
	rx.Init(rxBuf[:])

	for _, b := range []byte("ok\n") {
		_ = rx.Put(b)
	}
	for !rx.Empty() {
		b, _ := rx.Get()
		fmt.Printf("%q ", b)
	}
	fmt.Println()
	// Output:
	// 'o' 'k' '\n'
}
