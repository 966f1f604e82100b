package database

import (
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	got := DSN("hotel", "secret", "localhost", "3306", "hotel_db")
	want := "hotel:secret@tcp(localhost:3306)/hotel_db?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true"
	if got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}

func TestDSNWithoutPassword(t *testing.T) {
	got := DSN("hotel", "", "localhost", "3306", "hotel_db")
	if !strings.HasPrefix(got, "hotel@tcp(") {
		t.Fatalf("DSN without password should omit the colon, got %q", got)
	}
}

// A status transition may write a value the row already holds, e.g.
// checking a guest in while the room is already Occupied from a
// back-to-back stay.  The transaction treats zero affected rows as a
// missing row, which is only safe when the driver counts matched rows.
func TestDSNCountsMatchedRows(t *testing.T) {
	if !strings.Contains(DSN("u", "p", "h", "3306", "db"), "clientFoundRows=true") {
		t.Fatal("DSN must set clientFoundRows=true so no-op updates are not reported as missing rows")
	}
}
