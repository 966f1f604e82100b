package model

import "time"

// RoomStatus describes the operational state of a room.  Available and
// Occupied are driven by the booking lifecycle; Cleaning and Maintenance
// are housekeeping states set after check-out or by an admin override.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomCleaning    RoomStatus = "Cleaning"
	RoomMaintenance RoomStatus = "Maintenance"
)

// IsValid reports whether the status is one of the enumerated values.
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

// RoomType classifies a room into one of the fixed categories offered
// by the hotel.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
	RoomDeluxe RoomType = "Deluxe"
)

// IsValid reports whether the room type is one of the enumerated values.
func (t RoomType) IsValid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomSuite, RoomDeluxe:
		return true
	}
	return false
}

// Room represents a bookable hotel room.  The Status field is a derived
// cache of the latest booking action on the room: it is written only by
// the booking state machine (check-in sets Occupied, check-out sets
// Cleaning) and by the explicit admin status override endpoint.  Generic
// room edits never touch it.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name, e.g. "Room 101".
//  Type        – category (Single, Double, Suite, Deluxe).
//  PriceCents  – nightly price in cents.
//  Description – marketing copy shown to guests.
//  ImageURL    – path to the stored room photo.
//  Status      – current operational status (see RoomStatus).
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Room struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Type        RoomType   `json:"type"`
	PriceCents  uint32     `json:"price_cents"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Status      RoomStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
