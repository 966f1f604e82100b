package model

import "time"

// Attendance is one staff member's presence record for a single day.
// Date is stored as a YYYY-MM-DD string so that the "one record per
// staff per day" uniqueness can be enforced with a plain unique index.
//
// Fields:
//  ID           – primary key identifier.
//  StaffID      – staff member the record belongs to.
//  CheckInTime  – when the shift started.
//  CheckOutTime – when the shift ended; nil while still checked in.
//  Date         – calendar day in YYYY-MM-DD form.
//  CreatedAt    – creation timestamp.
type Attendance struct {
	ID           uint64     `json:"id"`
	StaffID      uint64     `json:"staff_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Date         string     `json:"date"`
	CreatedAt    time.Time  `json:"created_at"`
}
