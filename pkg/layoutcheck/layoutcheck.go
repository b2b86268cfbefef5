// Package layoutcheck classifies Go types by walking their reflect.Type.
//
// It applies the same rules as the flatabi.Layout constraint but follows
// them structurally, so it also admits what a type set cannot spell out:
// arrays of any length, nested arrays, pointers to composites, and structs
// laid out with structs.HostLayout. Code generators and boundary shims use
// it to vet element types before emitting typed records.
package layoutcheck

import (
	"reflect"
	"structs"
	"sync"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/flatabi/internal/common"
)

// ErrUnstable is wrapped by every rejection.
var ErrUnstable = errors.New("layout is not stable")

var hostLayout = reflect.TypeFor[structs.HostLayout]()

// Layout is a type's size and alignment in bytes.
type Layout struct {
	Size, Align int
}

type verdict struct {
	layout Layout
	err    error
}

var (
	mu    sync.RWMutex
	cache = make(map[reflect.Type]*verdict)
)

// Check returns nil when t may be embedded in a flat record, and otherwise
// an error wrapping ErrUnstable that names the offending part of t.
func Check(t reflect.Type) error {
	return lookup(t).err
}

// Describe returns t's layout when t is admissible.
func Describe(t reflect.Type) (Layout, error) {
	v := lookup(t)
	return v.layout, v.err
}

// Admissible reports whether T passes Check.
func Admissible[T any]() bool {
	return Check(reflect.TypeFor[T]()) == nil
}

// Of returns T's size and alignment, whether or not T is admissible.
func Of[T any]() Layout {
	var z T
	return Layout{Size: int(unsafe.Sizeof(z)), Align: int(unsafe.Alignof(z))}
}

func lookup(t reflect.Type) *verdict {
	mu.RLock()
	if v, ok := cache[t]; ok {
		mu.RUnlock()
		return v
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check
	if v, ok := cache[t]; ok {
		return v
	}
	v := &verdict{layout: Layout{Size: int(t.Size()), Align: t.Align()}}
	v.err = classify(t, map[reflect.Type]bool{})
	cache[t] = v
	return v
}

func classify(t reflect.Type, visiting map[reflect.Type]bool) error {
	k := t.Kind()
	switch {
	case common.IsScalarKind(k):
		return nil
	case k == reflect.UnsafePointer:
		return nil
	case k == reflect.Array:
		if err := classify(t.Elem(), visiting); err != nil {
			return errors.WithMessagef(err, "%s elem", t)
		}
		return nil
	case k == reflect.Pointer:
		// A pointer stays one word wide whatever it points at; the pointee
		// is checked so the memory behind it can be described too.
		if visiting[t] {
			return nil
		}
		visiting[t] = true
		if err := classify(t.Elem(), visiting); err != nil {
			return errors.WithMessagef(err, "%s pointee", t)
		}
		return nil
	case k == reflect.Struct:
		return classifyStruct(t, visiting)
	default:
		return errors.Wrapf(ErrUnstable, "%s: %s has a runtime-defined layout", t, k)
	}
}

func classifyStruct(t reflect.Type, visiting map[reflect.Type]bool) error {
	if t.Size() == 0 {
		return nil
	}
	host := false
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type == hostLayout {
			host = true
			break
		}
	}
	if !host && t.NumField() != 1 {
		return errors.Wrapf(ErrUnstable, "%s: struct without structs.HostLayout", t)
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if err := classify(sf.Type, visiting); err != nil {
			return errors.WithMessagef(err, "%s field %s", t, sf.Name)
		}
	}
	return nil
}
