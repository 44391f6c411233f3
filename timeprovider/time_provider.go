// Package timeprovider allows consumers of the library to supply the current time, making time dependent
// behavior such as urgency scoring testable.
package timeprovider

import "time"

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// CurrentTimeProvider is a TimeProvider which uses the system clock.
type CurrentTimeProvider struct{}

var _ TimeProvider = CurrentTimeProvider{}

func (tp CurrentTimeProvider) Now() time.Time {
	return time.Now()
}
