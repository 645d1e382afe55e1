package clock

import (
	"time"

	"github.com/console-catalog/catalog-api/internal/ports/out/clock"
)

var _ clock.Clock = SystemClock{}

// SystemClock stamps imported tasks with the wall-clock time in UTC,
// truncated to the second precision metav1.Time serializes.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC().Truncate(time.Second) }
