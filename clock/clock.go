// Package clock implements the two-phase tick/tock rendezvous that paces
// the CPU against an external driver. Exactly one goroutine calls Tick
// (the pacer) and exactly one calls Tock (the CPU); every bus access the
// CPU performs waits on this handshake so that the pacer can throttle
// execution to a target frequency, single-step it, or run it flat out.
package clock

import "sync"

// Clock coordinates a single producer (Tick) and a single consumer (Tock)
// through a shared boolean state protected by a mutex and condition
// variable. The predicate is re-checked in a loop under the lock so a
// notify that arrives before the waiter parks is never lost.
type Clock struct {
	mu    sync.Mutex
	cond  *sync.Cond
	state bool
	ticks uint64
}

// New returns a Clock ready for use.
func New() *Clock {
	c := &Clock{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Ticks returns the number of completed tick/tock cycles.
func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Tick blocks until the previous cycle's tock has been consumed, then
// raises the state and wakes any waiter.
func (c *Clock) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.state {
		c.cond.Wait()
	}
	c.state = !c.state
	c.cond.Broadcast()
}

// Tock blocks until a tick has been raised, then lowers the state,
// advances the cycle counter, and wakes any waiter.
func (c *Clock) Tock() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for !c.state {
		c.cond.Wait()
	}
	c.state = !c.state
	c.ticks++
	c.cond.Broadcast()
}

// WaitTick blocks until the state has been raised by Tick, without
// consuming it.
func (c *Clock) WaitTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for !c.state {
		c.cond.Wait()
	}
}

// WaitTock blocks until the state has been lowered by Tock, without
// raising it.
func (c *Clock) WaitTock() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.state {
		c.cond.Wait()
	}
}
