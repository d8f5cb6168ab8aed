package booking

import (
	"time"

	"requesto/models"
)

// SessionDuration is how long a booked session stays active after its start
// time. The countdown both dashboards render derives from this same window.
const SessionDuration = 60 * time.Minute

// IsActive reports whether the booking's session window is still open at
// the given instant. The boundary is exclusive: a session is no longer
// active exactly at start + SessionDuration.
func IsActive(b models.Booking, now time.Time) bool {
	return now.Before(b.Date.Add(SessionDuration))
}

// Remaining returns how much of the session window is left at the given
// instant, or zero when the session has expired.
func Remaining(b models.Booking, now time.Time) time.Duration {
	left := b.Date.Add(SessionDuration).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// ActiveOnly filters bookings down to those whose session window is still
// open. Order is preserved.
func ActiveOnly(bookings []models.Booking, now time.Time) []models.Booking {
	active := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if IsActive(b, now) {
			active = append(active, b)
		}
	}
	return active
}
