package userlock

import (
	"sync"
	"testing"
)

func TestKeyedSerializesSameKey(t *testing.T) {
	k := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("U1")
			counter++
			k.Unlock("U1")
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestKeyedIndependentKeysDoNotBlock(t *testing.T) {
	k := New()
	k.Lock("U1")
	defer k.Unlock("U1")

	done := make(chan struct{})
	go func() {
		k.Lock("U2")
		k.Unlock("U2")
		close(done)
	}()
	<-done
}
