/*
Package dnssd is a lazy binding of the DNS-SD client library (dns_sd.h), for hosts where that library is optional.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. Nothing is loaded at startup. The first call of any operation locates the library
    (dnssd.dll, libdns_sd.so.1, or libSystem on darwin) and binds every entry point it can find.
 2. The lookup runs once per [Dispatcher], even if it fails. A process started before the library
    was installed stays unbound until it restarts.
 3. Entry points are bound one by one. An older library missing some of them still serves the others.
 4. Unbound operations never panic: status operations return [ErrUnavailable], [Dispatcher.RefSockFD] returns -1,
    [Dispatcher.TXTRecordGetBytesPtr] returns nil, [Dispatcher.TXTRecordGetLength] returns 0 and void operations do nothing.
 5. Bound operations return exactly what the library returns. Arguments are passed through,
    Go strings are only converted to C strings, where an empty optional string becomes NULL.

# Notes

 1. Loading is based on [purego], no cgo is required. Windows uses LoadLibrary.
 2. Callbacks and contexts are raw addresses, such as returned by purego.NewCallback.
    The library keeps them after the call returns, so never pass Go pointers as context.
 3. The library path can be overridden by the environment variable DNSSD_LIBRARY,
    debug logging of the package level functions is enabled by DNSSD_DEBUG.
 4. A [Resolver] can be injected into [NewDispatcher], which is how tests simulate a partial library.

# Cli tool

The cli tool reports which entry points are available and drives a few operations:

	go install github.com/ZenLiuCN/dnssd/dnssdctl@latest
	dnssdctl symbols
	dnssdctl -l /opt/lib/libdns_sd.so register -n demo -t _http._tcp -p 8080 path=/

[purego]: https://github.com/ebitengine/purego
*/
package dnssd
