package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, model.RoleReceptionist, 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !at.Exp.After(time.Now()) {
		t.Fatal("expiry not in the future")
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tk.Method)
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub := claims["sub"].(float64); uint64(sub) != 42 {
		t.Fatalf("sub = %v, want 42", sub)
	}
	if role := claims["role"].(string); role != string(model.RoleReceptionist) {
		t.Fatalf("role = %q", role)
	}
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	at, err := NewAccessToken("right", 1, model.RoleGuest, 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, err = jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	if err == nil {
		t.Fatal("token signed with one secret verified with another")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Fatalf("raw length = %d, want 96", len(rt.Raw))
	}
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Fatal("hash not deterministic")
	}
	if h1 == rt.Raw {
		t.Fatal("hash equals raw token")
	}

	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if other.Raw == rt.Raw {
		t.Fatal("two refresh tokens collided")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2!", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "hunter2!") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "hunter3!") {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("not-a-bcrypt-hash", "hunter2!") {
		t.Fatal("garbage hash accepted")
	}
}

func TestHashPasswordClampsCost(t *testing.T) {
	hash, err := HashPassword("hunter2!", -1)
	if err != nil {
		t.Fatalf("hash with out-of-range cost: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default %d", cost, bcrypt.DefaultCost)
	}
}

func TestNewUniqueIDPrefixes(t *testing.T) {
	cases := []struct {
		role   model.Role
		prefix string
	}{
		{model.RoleGuest, "GUEST-"},
		{model.RoleAdmin, "ADMIN-"},
		{model.RoleReceptionist, "STAFF-"},
		{model.RoleHousekeeping, "STAFF-"},
		{model.RoleManager, "STAFF-"},
	}
	for _, tc := range cases {
		id, err := NewUniqueID(tc.role)
		if err != nil {
			t.Fatalf("%s: %v", tc.role, err)
		}
		if !strings.HasPrefix(id, tc.prefix) {
			t.Errorf("%s: id %q, want prefix %q", tc.role, id, tc.prefix)
		}
		suffix := strings.TrimPrefix(id, tc.prefix)
		if len(suffix) != 8 {
			t.Errorf("%s: suffix %q, want 8 chars", tc.role, suffix)
		}
		for _, c := range suffix {
			if !strings.ContainsRune(uniqueIDAlphabet, c) {
				t.Errorf("%s: suffix char %q outside alphabet", tc.role, c)
			}
		}
	}
}
