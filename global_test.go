package dnssd

import (
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	if Default() != std {
		t.Fatal("Default() is not the package dispatcher")
	}
	var w sync.WaitGroup
	fds := make([]int32, 8)
	for i := range fds {
		w.Add(1)
		go func(i int) {
			defer w.Done()
			fds[i] = RefSockFD(0)
		}(i)
	}
	w.Wait()
	if !Default().Loaded() {
		t.Error("package level call did not initialize the dispatcher")
	}
	if len(Default().Bound())+len(Default().Missing()) != len(Symbols()) {
		t.Errorf("bound %v missing %v", Default().Bound(), Default().Missing())
	}
	if !Default().bound[SymRefSockFD] {
		for i, fd := range fds {
			if fd != -1 {
				t.Errorf("RefSockFD() #%d = %d without binding", i, fd)
			}
		}
	}
	t.Log(Default())
}
