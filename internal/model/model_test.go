package model

import "testing"

func TestRoleIsStaff(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleGuest, false},
		{RoleReceptionist, true},
		{RoleHousekeeping, true},
		{RoleLaundry, true},
		{RoleManager, true},
		{RoleAdmin, true},
		{Role("Janitor"), false},
		{Role(""), false},
	}
	for _, tc := range cases {
		if got := tc.role.IsStaff(); got != tc.want {
			t.Errorf("%q.IsStaff() = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range AllRoles() {
		if !r.IsValid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("Superuser").IsValid() {
		t.Error("unknown role accepted")
	}
}

func TestStaffRolesExcludeGuest(t *testing.T) {
	for _, r := range StaffRoles() {
		if r == RoleGuest {
			t.Fatal("StaffRoles includes Guest")
		}
	}
}

func TestBookingStatusIsActive(t *testing.T) {
	cases := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingUpcoming, true},
		{BookingCheckedIn, true},
		{BookingCheckedOut, false},
		{BookingCancelled, false},
		{BookingStatus("??"), false},
	}
	for _, tc := range cases {
		if got := tc.status.IsActive(); got != tc.want {
			t.Errorf("%q.IsActive() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestRoomStatusIsValid(t *testing.T) {
	for _, s := range []RoomStatus{RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if RoomStatus("Free").IsValid() {
		t.Error("unknown room status accepted")
	}
}

func TestRoomTypeIsValid(t *testing.T) {
	for _, s := range []RoomType{RoomSingle, RoomDouble, RoomSuite, RoomDeluxe} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if RoomType("Penthouse").IsValid() {
		t.Error("unknown room type accepted")
	}
}
