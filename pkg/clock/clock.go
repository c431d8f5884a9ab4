// Package clock abstracts the time source used for creation timestamps
// and expiry checks, so tests can run against a controlled clock.
package clock

import "time"

// Clock supplies the current time as Unix epoch seconds.
type Clock interface {
	Now() int64
}

// System reads the wall clock.
type System struct{}

func (System) Now() int64 {
	return time.Now().Unix()
}
