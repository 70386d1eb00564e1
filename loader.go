package dnssd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

type (
	// Resolver locates and opens the DNS-SD client library.
	Resolver interface {
		Open() (Library, error)
	}
	// Library binds named entry points of an opened library.
	//
	// fptr is a pointer to a func variable; on success it is pointed at the entry point.
	// On failure it must be left untouched.
	Library interface {
		Bind(fptr any, sym string) error
	}
	// SystemResolver opens the library through the platform's dynamic loader.
	SystemResolver struct {
		Names []string //candidate library names or paths, tried in order
	}
)

// EnvLibrary names the environment variable overriding the default candidates,
// as a list separated by [os.PathListSeparator].
const EnvLibrary = "DNSSD_LIBRARY"

// NewSystemResolver create a resolver trying names in order. Without names it uses
// [EnvLibrary] when set, or the platform defaults.
func NewSystemResolver(names ...string) *SystemResolver {
	if len(names) == 0 {
		if v := os.Getenv(EnvLibrary); v != "" {
			names = filepath.SplitList(v)
		} else {
			names = append(names, defaultLibraries...)
		}
	}
	return &SystemResolver{Names: names}
}

func (r *SystemResolver) Open() (l Library, err error) {
	if len(r.Names) == 0 {
		return nil, ErrUnsupportedPlatform
	}
	var errs []error
	for _, name := range r.Names {
		if l, err = openLibrary(name); err == nil {
			return
		}
		if errors.Is(err, ErrUnsupportedPlatform) {
			return nil, err
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

// procLibrary binds entry points from raw addresses.
type procLibrary struct {
	name   string
	lookup func(sym string) (uintptr, error)
	bind   func(fptr any, addr uintptr)
}

func (l *procLibrary) Bind(fptr any, sym string) (err error) {
	addr, err := l.lookup(sym)
	if err != nil {
		return fmt.Errorf("%w %s in %s: %w", ErrMissingSymbol, sym, l.name, err)
	}
	if addr == 0 {
		return fmt.Errorf("%w %s in %s", ErrMissingSymbol, sym, l.name)
	}
	defer func() {
		switch x := recover().(type) {
		case nil:
		case error:
			reset(fptr)
			err = fmt.Errorf("bind %s: %w", sym, x)
		default:
			reset(fptr)
			err = fmt.Errorf("bind %s: %v", sym, x)
		}
	}()
	l.bind(fptr, addr)
	return
}

// reset restores a func variable to nil.
func reset(fptr any) {
	v := reflect.ValueOf(fptr)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v.Elem().Set(reflect.Zero(v.Elem().Type()))
	}
}
