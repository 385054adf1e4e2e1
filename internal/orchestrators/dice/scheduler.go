package dice

import "time"

// Scheduler runs a function once after a delay
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func())
}

type timerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
