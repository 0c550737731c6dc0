package id

import (
	"crypto/rand"
	"strconv"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a time-prefixed identifier: the creation time in
// base36 milliseconds followed by 8 random alphanumeric characters.
// IDs generated later sort after earlier ones.
func GenerateID() string {
	return generateAt(time.Now())
}

func generateAt(t time.Time) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[b[i]%byte(len(alphabet))]
	}
	return strconv.FormatInt(t.UnixMilli(), 36) + string(b)
}
