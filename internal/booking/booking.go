// Package booking implements the room availability checker and the
// booking state machine.  It owns all writes to Room.Status except the
// explicit admin override: check-in marks the room Occupied and
// check-out marks it Cleaning.  Persistence goes through the Store
// interface so the logic stays independent of the SQL layer.
package booking

import (
	"errors"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// ErrRoomUnavailable is returned when the requested date range conflicts
// with an existing active booking.  User-correctable; handlers map it to
// a 400 response.
var ErrRoomUnavailable = errors.New("room is not available for the selected dates")

// ErrInvalidTransition is returned when a lifecycle action does not
// apply to the booking's current status, e.g. checking in twice or
// checking out before check-in.
var ErrInvalidTransition = errors.New("invalid booking state transition")

// ErrInvalidRange is returned when the check-out date is not strictly
// after the check-in date.  Same-day stays are rejected.
var ErrInvalidRange = errors.New("check-out date must be after check-in date")

// ErrGuestRequired is returned when the embedded guest contact details
// are incomplete.
var ErrGuestRequired = errors.New("guest first name, last name, email and phone are required")

// MaxStayNights bounds a single booking.  Ranges beyond it are almost
// certainly a typo in the check-out year and would distort the total
// price, so they are rejected up front.
const MaxStayNights = 365

// ErrStayTooLong is returned when the requested range exceeds
// MaxStayNights.
var ErrStayTooLong = errors.New("stay exceeds the maximum booking length")

// ErrRoomNotFound and ErrBookingNotFound are returned by Store
// implementations when an ID does not resolve to a row.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Overlaps reports whether two half-open [check-in, check-out) intervals
// intersect.  Touching boundaries do not conflict, so a booking ending
// on a given day and another starting the same day can share a room.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Nights returns the number of nights between two dates as a whole
// calendar-day difference.  Time-of-day components are discarded before
// subtracting so that e.g. a late check-in does not shorten the stay.
func Nights(checkIn, checkOut time.Time) int {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	return int(out.Sub(in) / (24 * time.Hour))
}

// TotalPriceCents computes nights x nightly rate.  The product is
// carried in 64 bits so a long stay at a high rate cannot wrap.
// Callers must have validated that the range yields at least one night.
func TotalPriceCents(priceCents uint32, checkIn, checkOut time.Time) uint64 {
	n := Nights(checkIn, checkOut)
	if n < 1 {
		return 0
	}
	return uint64(priceCents) * uint64(n)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// canTransition encodes the implemented lifecycle:
// Upcoming -> Checked-In -> Checked-Out.  Cancelled is a terminal state
// with no transition into it exposed, so no case admits it.
func canTransition(from, to model.BookingStatus) bool {
	switch to {
	case model.BookingCheckedIn:
		return from == model.BookingUpcoming
	case model.BookingCheckedOut:
		return from == model.BookingCheckedIn
	}
	return false
}
