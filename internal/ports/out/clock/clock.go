package clock

import "time"

// Clock provides time to the application, e.g. to stamp creationTimestamp on
// imported tasks that do not carry one.
type Clock interface {
	Now() time.Time
}
