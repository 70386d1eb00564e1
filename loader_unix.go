//go:build (darwin || freebsd || linux) && !android && (amd64 || arm64)

package dnssd

import (
	"runtime"

	"github.com/ebitengine/purego"
)

var defaultLibraries = func() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/usr/lib/libSystem.B.dylib"}
	}
	// avahi-compat-libdns_sd or mDNSResponder
	return []string{"libdns_sd.so.1", "libdns_sd.so"}
}()

// openLibrary never closes the handle: bindings live for the whole process.
func openLibrary(name string) (Library, error) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	return &procLibrary{
		name: name,
		lookup: func(sym string) (uintptr, error) {
			return purego.Dlsym(h, sym)
		},
		bind: purego.RegisterFunc,
	}, nil
}
