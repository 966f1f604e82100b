package model

import "time"

// BookingStatus tracks a booking through its lifecycle.  The only
// implemented transitions are Upcoming -> CheckedIn -> CheckedOut.
// Cancelled exists as a terminal state in the schema but no endpoint
// transitions a booking into it yet.
type BookingStatus string

const (
	BookingUpcoming   BookingStatus = "Upcoming"
	BookingCheckedIn  BookingStatus = "Checked-In"
	BookingCheckedOut BookingStatus = "Checked-Out"
	BookingCancelled  BookingStatus = "Cancelled"
)

// IsValid reports whether the status is one of the enumerated values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingUpcoming, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// IsActive reports whether the booking occupies its room for availability
// purposes.  Checked-Out and Cancelled bookings no longer hold the room.
func (s BookingStatus) IsActive() bool {
	return s == BookingUpcoming || s == BookingCheckedIn
}

// GuestDetails carries the contact information recorded with a booking.
// It is embedded in the booking rather than read from the user profile so
// that a guest can book on behalf of someone else.
type GuestDetails struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Booking records a guest's reservation of a room for a half-open date
// interval [CheckInDate, CheckOutDate).  The booking row is the sole
// source of truth for occupancy; Room.Status is a cache maintained by
// the state machine.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who made the booking.
//  RoomID          – room being booked.  May dangle after a room delete;
//                    readers must tolerate the missing room.
//  CheckInDate     – first night of the stay (inclusive).
//  CheckOutDate    – departure date (exclusive); strictly after check-in.
//  TotalPriceCents – nights x nightly price, computed at creation.
//  Guest           – embedded guest contact details.
//  Status          – lifecycle state (see BookingStatus).
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Booking struct {
	ID              uint64        `json:"id"`
	UserID          uint64        `json:"user_id"`
	RoomID          uint64        `json:"room_id"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"`
	TotalPriceCents uint64        `json:"total_price_cents"`
	Guest           GuestDetails  `json:"guest_details"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
