package model

import "time"

// Role is the closed set of user roles.  Role checks go through the
// methods below rather than ad-hoc string comparisons so that the
// policy lives in one place.
type Role string

const (
	RoleGuest        Role = "Guest"
	RoleReceptionist Role = "Receptionist"
	RoleHousekeeping Role = "Housekeeping"
	RoleLaundry      Role = "Laundry"
	RoleManager      Role = "Manager"
	RoleAdmin        Role = "Admin"
)

// IsValid reports whether the role is one of the enumerated values.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleReceptionist, RoleHousekeeping, RoleLaundry, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role grants access to the staff portal.
// Every valid role except Guest counts as staff, Admin included.
func (r Role) IsStaff() bool {
	return r.IsValid() && r != RoleGuest
}

// StaffRoles returns all roles allowed on staff endpoints.  Used when
// registering role middleware so the allowed set is not repeated at
// every call site.
func StaffRoles() []Role {
	return []Role{RoleReceptionist, RoleHousekeeping, RoleLaundry, RoleManager, RoleAdmin}
}

// AllRoles returns every valid role.  Authenticated-but-unprivileged
// endpoints accept all of them.
func AllRoles() []Role {
	return []Role{RoleGuest, RoleReceptionist, RoleHousekeeping, RoleLaundry, RoleManager, RoleAdmin}
}

// StaffDetails holds employment metadata for non-guest users.  All
// fields are empty for guests.
type StaffDetails struct {
	Title      string     `json:"title,omitempty"`
	Department string     `json:"department,omitempty"`
	HireDate   *time.Time `json:"hire_date,omitempty"`
}

// User represents an account holder: a guest, a staff member or an
// admin.  UniqueID is a human-readable identifier assigned at creation
// ("GUEST-", "STAFF-" or "ADMIN-" prefix plus a random suffix).
//
// Fields:
//  ID           – primary key identifier.
//  UniqueID     – prefixed public identifier.
//  Name         – full display name.
//  Email        – unique, lowercased email address.
//  PasswordHash – bcrypt hash; never serialized.
//  Role         – access role (see Role).
//  Staff        – employment details for staff accounts.
//  IsActive     – whether the account may log in.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
	ID           uint64       `json:"id"`
	UniqueID     string       `json:"unique_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Staff        StaffDetails `json:"staff_details,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
