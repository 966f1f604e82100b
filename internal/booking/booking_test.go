package booking

import (
	"math"
	"testing"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut string
		want                 bool
	}{
		{"identical ranges", "2024-06-10", "2024-06-12", "2024-06-10", "2024-06-12", true},
		{"partial overlap at start", "2024-06-10", "2024-06-14", "2024-06-08", "2024-06-11", true},
		{"partial overlap at end", "2024-06-10", "2024-06-14", "2024-06-13", "2024-06-16", true},
		{"existing inside requested", "2024-06-11", "2024-06-12", "2024-06-10", "2024-06-14", true},
		{"requested inside existing", "2024-06-10", "2024-06-14", "2024-06-11", "2024-06-12", true},
		{"one shared night", "2024-06-10", "2024-06-12", "2024-06-11", "2024-06-13", true},
		{"back to back, existing first", "2024-06-08", "2024-06-10", "2024-06-10", "2024-06-12", false},
		{"back to back, requested first", "2024-06-10", "2024-06-12", "2024-06-08", "2024-06-10", false},
		{"disjoint before", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"disjoint after", "2024-06-20", "2024-06-22", "2024-06-10", "2024-06-12", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(day(tc.aIn), day(tc.aOut), day(tc.bIn), day(tc.bOut))
			if got != tc.want {
				t.Fatalf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aIn, tc.aOut, tc.bIn, tc.bOut, got, tc.want)
			}
			// Overlap is symmetric.
			if Overlaps(day(tc.bIn), day(tc.bOut), day(tc.aIn), day(tc.aOut)) != got {
				t.Fatal("overlap is not symmetric")
			}
		})
	}
}

func TestNights(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
	}{
		{"2024-06-10", "2024-06-11", 1},
		{"2024-06-10", "2024-06-13", 3},
		{"2024-06-28", "2024-07-02", 4}, // month boundary
		{"2024-06-10", "2024-06-10", 0},
	}
	for _, tc := range cases {
		if got := Nights(day(tc.in), day(tc.out)); got != tc.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", tc.in, tc.out, got, tc.want)
		}
	}
}

func TestNightsIgnoresTimeOfDay(t *testing.T) {
	in := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	out := time.Date(2024, 6, 12, 1, 15, 0, 0, time.UTC)
	if got := Nights(in, out); got != 2 {
		t.Fatalf("Nights with time components = %d, want 2", got)
	}
}

func TestTotalPriceCents(t *testing.T) {
	// $200.00/night for 3 nights = $600.00
	if got := TotalPriceCents(20000, day("2024-06-10"), day("2024-06-13")); got != 60000 {
		t.Fatalf("TotalPriceCents = %d, want 60000", got)
	}
	if got := TotalPriceCents(9950, day("2024-06-10"), day("2024-06-11")); got != 9950 {
		t.Fatalf("TotalPriceCents one night = %d, want 9950", got)
	}
}

func TestTotalPriceCentsDoesNotWrap(t *testing.T) {
	// 100 nights at the maximum nightly rate exceeds 32 bits.
	const rate = math.MaxUint32
	got := TotalPriceCents(rate, day("2024-01-01"), day("2024-04-10"))
	if want := uint64(rate) * 100; got != want {
		t.Fatalf("TotalPriceCents = %d, want %d", got, want)
	}
	if got := TotalPriceCents(20000, day("2024-06-13"), day("2024-06-10")); got != 0 {
		t.Fatalf("TotalPriceCents with inverted range = %d, want 0", got)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to model.BookingStatus
		want     bool
	}{
		{model.BookingUpcoming, model.BookingCheckedIn, true},
		{model.BookingCheckedIn, model.BookingCheckedOut, true},
		{model.BookingUpcoming, model.BookingCheckedOut, false},
		{model.BookingCheckedIn, model.BookingCheckedIn, false},
		{model.BookingCheckedOut, model.BookingCheckedIn, false},
		{model.BookingCheckedOut, model.BookingCheckedOut, false},
		{model.BookingCancelled, model.BookingCheckedIn, false},
		{model.BookingUpcoming, model.BookingCancelled, false},
		{model.BookingUpcoming, model.BookingUpcoming, false},
	}
	for _, tc := range cases {
		if got := canTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
