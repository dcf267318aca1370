package utils

import (
	"math/bits"
	"sync"
)

// SizeClasses are the capacities the pool hands out. Requests above the
// largest class are served by plain allocation and never pooled.
var SizeClasses = [...]int{64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

const (
	minClass = 64
	maxClass = 32768
)

// DefaultBufferPool is shared by builders that were not given their own pool.
var DefaultBufferPool = NewBufferPool()

// ClassIndex returns the index of the smallest class that fits n bytes,
// or -1 if n is not poolable.
func ClassIndex(n int) int {
	if n <= 0 || n > maxClass {
		return -1
	}
	if n <= minClass {
		return 0
	}
	idx := bits.Len(uint(n - 1))
	return idx - 6
}

// ClassSize rounds n up to its class capacity. Sizes above the largest
// class are returned unchanged.
func ClassSize(n int) int {
	idx := ClassIndex(n)
	if idx < 0 {
		return n
	}
	return SizeClasses[idx]
}

type BufferPool struct {
	pools [len(SizeClasses)]sync.Pool
}

func NewBufferPool() *BufferPool {
	var bp BufferPool
	for i, sz := range SizeClasses {
		size := sz
		bp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &bp
}

// Acquire returns a slice of length n whose capacity is the class size.
// Contents are whatever the previous owner left behind.
func (bp *BufferPool) Acquire(n int) []byte {
	idx := ClassIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := bp.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

// AcquireZeroed is Acquire with the full capacity cleared.
func (bp *BufferPool) AcquireZeroed(n int) []byte {
	buf := bp.Acquire(n)
	clear(buf[:cap(buf)])
	return buf
}

// Release hands buf back to its class. Slices whose capacity is not
// exactly a class size are dropped.
func (bp *BufferPool) Release(buf []byte) {
	c := cap(buf)
	if c < minClass || c > maxClass || c&(c-1) != 0 {
		return
	}
	idx := bits.Len(uint(c)) - 7
	buf = buf[:c]
	bp.pools[idx].Put(&buf)
}
