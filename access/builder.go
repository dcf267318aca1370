package access

import (
	"fmt"
	"sync"

	"github.com/quickwritereader/filovec/utils"
)

// DefaultMaxSize caps a Builder unless WithMaxSize says otherwise.
const DefaultMaxSize = 1 << 20

const defaultInitialSize = 64

// Builder appends fixed-layout records to a growable buffer.
//
// Each record starts with Prep, which pads for alignment and reserves the
// record's bytes. The Put* calls then fill that reservation from its end
// toward its start, so a struct's trailing field is written first and the
// finished bytes read in declaration order.
type Builder struct {
	buf     []byte // finished bytes; len(buf) is where the next reservation goes
	slot    int    // start of the current reservation
	head    int    // next Put writes at head-1; head == slot once the reservation is full
	maxSize int
	pool    *utils.BufferPool
}

type BuilderOption func(*Builder)

// WithMaxSize limits how far the builder may grow. Non-positive values are ignored.
func WithMaxSize(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxSize = n
		}
	}
}

// WithBufferPool sets where backing storage is acquired from and released to.
func WithBufferPool(bp *utils.BufferPool) BuilderOption {
	return func(b *Builder) {
		if bp != nil {
			b.pool = bp
		}
	}
}

func NewBuilder(initialSize int, opts ...BuilderOption) *Builder {
	b := &Builder{
		maxSize: DefaultMaxSize,
		pool:    utils.DefaultBufferPool,
	}
	for _, opt := range opts {
		opt(b)
	}
	if initialSize <= 0 {
		initialSize = defaultInitialSize
	}
	if initialSize > b.maxSize {
		initialSize = b.maxSize
	}
	b.buf = b.pool.Acquire(initialSize)[:0]
	return b
}

var builderPool = sync.Pool{
	New: func() interface{} {
		return NewBuilder(defaultInitialSize)
	},
}

// AcquireBuilder returns an empty builder with default limits from a shared pool.
func AcquireBuilder() *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset()
	return b
}

// ReleaseBuilder returns b to the shared pool. Bytes previously obtained
// from b must not be used afterwards.
func ReleaseBuilder(b *Builder) {
	if b.buf == nil || b.maxSize != DefaultMaxSize {
		return
	}
	builderPool.Put(b)
}

// Prep pads the buffer so the next reservation starts on an align boundary,
// then reserves size zeroed bytes for the Put* calls to fill.
func (b *Builder) Prep(align, size int) error {
	if align <= 0 || align&(align-1) != 0 {
		return fmt.Errorf("Prep: align %d: %w", align, ErrInvalidAlignment)
	}
	if size < 0 {
		return fmt.Errorf("Prep: negative size %d: %w", size, ErrOutOfBounds)
	}

	end := len(b.buf)
	pad := -end & (align - 1)
	need := end + pad + size
	if need > b.maxSize {
		return fmt.Errorf("Prep: need %d bytes, limit %d: %w", need, b.maxSize, ErrCapacityExceeded)
	}

	b.grow(need)
	b.buf = b.buf[:need]
	clear(b.buf[end:need])
	b.slot = end + pad
	b.head = need
	return nil
}

// grow makes sure cap(b.buf) >= need, moving to larger pooled storage.
func (b *Builder) grow(need int) {
	if cap(b.buf) >= need {
		return
	}
	newCap := 2 * cap(b.buf)
	if newCap > b.maxSize {
		newCap = b.maxSize
	}
	if newCap < need {
		newCap = need
	}
	nb := b.pool.Acquire(newCap)[:len(b.buf)]
	copy(nb, b.buf)
	b.pool.Release(b.buf)
	b.buf = nb
}

// PutUint8 writes the next field (moving backwards) of the current reservation.
func (b *Builder) PutUint8(v uint8) error {
	if b.head <= b.slot {
		return fmt.Errorf("PutUint8: reservation at %d is full: %w", b.slot, ErrOutOfBounds)
	}
	b.head--
	WriteUint8(b.buf, b.head, v)
	return nil
}

// PutBool writes the next field of the current reservation as 1 or 0.
func (b *Builder) PutBool(v bool) error {
	if b.head <= b.slot {
		return fmt.Errorf("PutBool: reservation at %d is full: %w", b.slot, ErrOutOfBounds)
	}
	b.head--
	WriteBool(b.buf, b.head, v)
	return nil
}

// AppendRecord reserves room for r and writes it in one step.
func (b *Builder) AppendRecord(r FixedRecord) (int, error) {
	if err := b.Prep(r.Align(), r.Size()); err != nil {
		return 0, fmt.Errorf("AppendRecord: %w", err)
	}
	r.Write(b.buf, b.slot)
	b.head = b.slot
	return b.slot, nil
}

// Offset is the absolute position where the most recent reservation begins.
func (b *Builder) Offset() int {
	return b.slot
}

// Bytes returns the built buffer. The slice aliases the builder's storage
// and is invalidated by the next growth, Reset or Release.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) MaxSize() int {
	return b.maxSize
}

// Reset empties the builder and keeps its storage.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
	b.slot = 0
	b.head = 0
}

// Release returns the storage to the pool. The builder is unusable afterwards
// until Reset is called, which starts again from empty storage.
func (b *Builder) Release() {
	b.pool.Release(b.buf)
	b.buf = nil
	b.slot = 0
	b.head = 0
}
