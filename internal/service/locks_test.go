package service

import (
	"sync"
	"testing"
)

func TestUserLocksSerializeSameUser(t *testing.T) {
	locks := newUserLocks()

	// A bare counter increment like this races without the lock.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("user-1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("expected 100 increments, got %d", counter)
	}
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()

	release := make(chan struct{})
	held := make(chan struct{})
	go func() {
		unlock := locks.lock("user-1")
		close(held)
		<-release
		unlock()
	}()
	<-held

	// A different user's lock must not wait on user-1's.
	unlock := locks.lock("user-2")
	unlock()
	close(release)
}
