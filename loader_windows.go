//go:build windows && (amd64 || arm64)

package dnssd

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// Bonjour SDK for Windows
var defaultLibraries = []string{"dnssd.dll"}

// openLibrary never frees the module: bindings live for the whole process.
func openLibrary(name string) (Library, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return nil, err
	}
	return &procLibrary{
		name: name,
		lookup: func(sym string) (uintptr, error) {
			return windows.GetProcAddress(h, sym)
		},
		bind: purego.RegisterFunc,
	}, nil
}
