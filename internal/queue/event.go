// Package queue defines message payloads exchanged over the message broker.
package queue

// Booking lifecycle actions carried in BookingEvent.Action.
const (
	ActionCreated    = "booking.created"
	ActionCheckedIn  = "booking.checked_in"
	ActionCheckedOut = "booking.checked_out"
)

// BookingEvent is published whenever a booking is created, checked in or
// checked out.  It carries enough information for downstream consumers
// to log, notify, or feed analytics without querying the primary
// database.
type BookingEvent struct {
	Action          string `json:"action"`
	BookingID       uint64 `json:"booking_id"`
	UserID          uint64 `json:"user_id"`
	RoomID          uint64 `json:"room_id"`
	RoomName        string `json:"room_name,omitempty"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	TotalPriceCents uint64 `json:"total_price_cents"`
	OccurredAt      string `json:"occurred_at"`
}
