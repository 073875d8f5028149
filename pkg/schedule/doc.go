// Package schedule provides the single-threaded cooperative runtime every
// toast runs on.
//
// All toast state transitions happen on one loop. Work reaches the loop in
// three ways: timers (After), per-frame callbacks (Frame) and callbacks
// handed over from other goroutines (Dispatch). Nothing ever blocks the
// loop; every wait is a scheduled callback, and every scheduled callback
// returns a Cancel that is safe to call any number of times.
//
// Loop is the production implementation, a goroutine that ticks frames at
// a fixed rate. Fake is a virtual clock for tests:
//
//	clock := schedule.NewFake()
//	clock.After(300*time.Millisecond, reveal)
//	clock.Advance(time.Second) // runs reveal at t=300ms
package schedule
