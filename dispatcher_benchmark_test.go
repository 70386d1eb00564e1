package dnssd

import (
	"testing"
)

func benchDispatcher() *Dispatcher {
	var calls []string
	return NewDispatcher(&fakeResolver{lib: fullLibrary(&calls)})
}

func BenchmarkFirstCall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchDispatcher().RefSockFD(1)
	}
}

func BenchmarkForward(b *testing.B) {
	d := benchDispatcher()
	d.RefSockFD(1)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.RefSockFD(ServiceRef(i))
	}
}

func BenchmarkForwardUnbound(b *testing.B) {
	d := NewDispatcher(&fakeResolver{err: ErrLibraryNotFound})
	d.RefSockFD(1)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.RefSockFD(ServiceRef(i))
	}
}

func sockFD(sd ServiceRef) int32 {
	return int32(sd) + 1000
}

func BenchmarkDirect(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sockFD(ServiceRef(i))
	}
}
