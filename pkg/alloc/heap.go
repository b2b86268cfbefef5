package alloc

import (
	"sort"
	"sync"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/rawbytedev/flatabi"
)

// Block describes one outstanding allocation.
type Block struct {
	Addr  uintptr
	Size  uintptr
	Align uintptr
}

type heapBlock struct {
	backing []byte // keeps the block reachable until Deallocate
	size    uintptr
	align   uintptr
}

// Heap allocates blocks from the Go heap and keeps them reachable in a
// registry until they are deallocated, so an owning record that has left Go
// memory cannot be collected under it. The collector does not move heap
// objects, which keeps recorded addresses stable.
//
// Deallocating an unknown or already freed block returns ErrUnknownBlock
// instead of corrupting memory.
type Heap struct {
	mu     sync.Mutex
	blocks map[uintptr]heapBlock

	live      atomic.Int64
	liveBytes atomic.Int64
}

func NewHeap() *Heap {
	return &Heap{blocks: make(map[uintptr]heapBlock)}
}

func (h *Heap) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if !validAlign(align) {
		return nil, errors.Wrapf(ErrBadAlign, "align %d", align)
	}
	if size == 0 {
		return flatabi.Dangling(), nil
	}
	if oversized(size, align-1) {
		return nil, errors.Wrapf(ErrBadLength, "size %d", size)
	}
	backing := make([]byte, size+align-1)
	base := uintptr(unsafe.Pointer(&backing[0]))
	off := (align - base%align) % align
	p := unsafe.Pointer(&backing[off])

	h.mu.Lock()
	h.blocks[uintptr(p)] = heapBlock{backing: backing, size: size, align: align}
	h.mu.Unlock()

	h.live.Inc()
	h.liveBytes.Add(int64(size))
	return p, nil
}

func (h *Heap) Deallocate(p unsafe.Pointer, size, align uintptr) error {
	if size == 0 {
		return nil
	}
	addr := uintptr(p)

	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.blocks[addr]
	if !ok {
		return errors.Wrapf(ErrUnknownBlock, "%#x", addr)
	}
	if b.size != size || b.align != align {
		return errors.Wrapf(ErrSizeMismatch, "%#x: allocated %d/%d, freed %d/%d", addr, b.size, b.align, size, align)
	}
	delete(h.blocks, addr)
	h.live.Dec()
	h.liveBytes.Sub(int64(size))
	return nil
}

// Live returns the number of outstanding blocks and their total size.
func (h *Heap) Live() (blocks, bytes int64) {
	return h.live.Load(), h.liveBytes.Load()
}

// Outstanding lists blocks that were allocated and not yet freed, ordered
// by address. An owning record dropped without being taken shows up here.
func (h *Heap) Outstanding() []Block {
	h.mu.Lock()
	out := make([]Block, 0, len(h.blocks))
	for addr, b := range h.blocks {
		out = append(out, Block{Addr: addr, Size: b.size, Align: b.align})
	}
	h.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// Report logs every outstanding block at warn level.
func (h *Heap) Report(logger log.Logger) {
	for _, b := range h.Outstanding() {
		level.Warn(logger).Log("msg", "block still allocated", "addr", b.Addr, "size", b.Size, "align", b.Align)
	}
}
