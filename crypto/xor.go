package crypto

import "fmt"

func XOR(buf, x, y []byte) []byte {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf
}

func XORByte(buf, x []byte, y byte) []byte {
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i, b := range x {
		buf[i] = b ^ y
	}
	return buf
}

func XORRepeat(buf, x, y []byte) []byte {
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i, b := range x {
		buf[i] = b ^ y[i%len(y)]
	}
	return buf
}
