package utils

import (
	"crypto/rand"
	"strings"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// uniqueIDAlphabet excludes easily confused characters (0/O, 1/I/L).
const uniqueIDAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// NewUniqueID returns a public account identifier like "GUEST-7KQ2M9XF".
// Guests get a GUEST- prefix, admins ADMIN-, everyone else STAFF-.
func NewUniqueID(role model.Role) (string, error) {
	prefix := "STAFF-"
	switch role {
	case model.RoleGuest:
		prefix = "GUEST-"
	case model.RoleAdmin:
		prefix = "ADMIN-"
	}
	suffix, err := randomString(8)
	if err != nil {
		return "", err
	}
	return prefix + suffix, nil
}

func randomString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range buf {
		b.WriteByte(uniqueIDAlphabet[int(c)%len(uniqueIDAlphabet)])
	}
	return b.String(), nil
}
