package dnssd

import (
	"errors"
	"os"
	"slices"
	"testing"
)

func TestNewSystemResolver(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	if r := NewSystemResolver(); !slices.Equal(r.Names, defaultLibraries) {
		t.Errorf("Names = %v, want %v", r.Names, defaultLibraries)
	}
	t.Setenv(EnvLibrary, "/opt/a.so"+string(os.PathListSeparator)+"b.so")
	if r := NewSystemResolver(); !slices.Equal(r.Names, []string{"/opt/a.so", "b.so"}) {
		t.Errorf("Names = %v", r.Names)
	}
	if r := NewSystemResolver("c.so"); !slices.Equal(r.Names, []string{"c.so"}) {
		t.Errorf("Names = %v", r.Names)
	}
}

func TestSystemResolverMissing(t *testing.T) {
	r := NewSystemResolver("/nonexistent/libdns_sd_missing.so", "libdns_sd_missing.so.0")
	l, err := r.Open()
	if l != nil || err == nil {
		t.Fatalf("Open() = %v, %v", l, err)
	}
	if !errors.Is(err, ErrLibraryNotFound) && !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("Open() error = %v", err)
	}
	d := NewDispatcher(r, debugging)
	if st := d.CreateConnection(new(ServiceRef)); st != ErrUnavailable {
		t.Errorf("CreateConnection() = %v", st)
	}
	if len(d.Missing()) != len(Symbols()) {
		t.Errorf("Missing() = %v", d.Missing())
	}
}

func TestProcLibraryBind(t *testing.T) {
	l := &procLibrary{
		name: "fake",
		lookup: func(sym string) (uintptr, error) {
			switch sym {
			case SymRefSockFD:
				return 0x1000, nil
			case SymRegister:
				return 0, nil
			}
			return 0, errors.New("undefined symbol")
		},
		bind: func(fptr any, addr uintptr) {
			*fptr.(*func(ServiceRef) int32) = func(ServiceRef) int32 { return int32(addr) }
			panic("unsupported argument type")
		},
	}
	var t0 table
	if err := l.Bind(&t0.refSockFD, SymRefSockFD); err == nil || t0.refSockFD != nil {
		t.Errorf("Bind() = %v, bound %v", err, t0.refSockFD != nil)
	}
	if err := l.Bind(&t0.register, SymRegister); !errors.Is(err, ErrMissingSymbol) {
		t.Errorf("Bind() = %v", err)
	}
	if err := l.Bind(&t0.browse, SymBrowse); !errors.Is(err, ErrMissingSymbol) {
		t.Errorf("Bind() = %v", err)
	}
	l.bind = func(fptr any, addr uintptr) {
		*fptr.(*func(ServiceRef) int32) = func(ServiceRef) int32 { return int32(addr) }
	}
	if err := l.Bind(&t0.refSockFD, SymRefSockFD); err != nil || t0.refSockFD(0) != 0x1000 {
		t.Errorf("Bind() = %v", err)
	}
}

func TestSymbols(t *testing.T) {
	s := Symbols()
	if len(s) != 17 {
		t.Errorf("%d symbols", len(s))
	}
	seen := make(map[string]bool)
	for _, x := range s {
		if seen[x] {
			t.Errorf("duplicated %s", x)
		}
		seen[x] = true
	}
}
