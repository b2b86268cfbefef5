//go:build linux || darwin

package alloc

import (
	"os"
	"sync"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/rawbytedev/flatabi"
)

// Mmap allocates page-granular blocks from anonymous private mappings. The
// memory lives outside the Go heap: a record dropped without being taken
// leaks its mapping until the process exits.
type Mmap struct {
	mu       sync.Mutex
	regions  map[uintptr][]byte
	pageSize uintptr
	logger   log.Logger
}

func NewMmap(logger log.Logger) *Mmap {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Mmap{
		regions:  make(map[uintptr][]byte),
		pageSize: uintptr(os.Getpagesize()),
		logger:   logger,
	}
}

func (m *Mmap) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if !validAlign(align) || align > m.pageSize {
		return nil, errors.Wrapf(ErrBadAlign, "align %d", align)
	}
	if size == 0 {
		return flatabi.Dangling(), nil
	}
	if oversized(size, m.pageSize) {
		return nil, errors.Wrapf(ErrBadLength, "size %d", size)
	}
	n := m.roundUp(size)
	region, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", n)
	}
	p := unsafe.Pointer(&region[0])

	m.mu.Lock()
	m.regions[uintptr(p)] = region
	m.mu.Unlock()

	level.Debug(m.logger).Log("msg", "mapped block", "addr", uintptr(p), "size", size, "mapped", n)
	return p, nil
}

func (m *Mmap) Deallocate(p unsafe.Pointer, size, align uintptr) error {
	if size == 0 {
		return nil
	}
	addr := uintptr(p)

	m.mu.Lock()
	region, ok := m.regions[addr]
	if ok && uintptr(len(region)) != m.roundUp(size) {
		m.mu.Unlock()
		return errors.Wrapf(ErrSizeMismatch, "%#x: mapped %d, freed %d", addr, len(region), size)
	}
	delete(m.regions, addr)
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrUnknownBlock, "%#x", addr)
	}

	if err := unix.Munmap(region); err != nil {
		return errors.Wrapf(err, "munmap %#x", addr)
	}
	level.Debug(m.logger).Log("msg", "unmapped block", "addr", addr, "size", size)
	return nil
}

// Mapped returns the number of live mappings.
func (m *Mmap) Mapped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regions)
}

func (m *Mmap) roundUp(size uintptr) uintptr {
	return (size + m.pageSize - 1) &^ (m.pageSize - 1)
}
