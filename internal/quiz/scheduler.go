package quiz

import "time"

// CancelFunc stops a scheduled call. Calling it more than once, or
// after the call ran, is harmless.
type CancelFunc func()

// Scheduler defers a function call. The delivery layer uses it for the
// pause between a cleared geo step and the next level; tests substitute
// an implementation that fires on demand.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules through time.AfterFunc.
type TimerScheduler struct{}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (*TimerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
