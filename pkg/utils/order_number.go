package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a merchant order number in the form
// YYYYMMDD-HHMMSS-XXXXXX where the suffix is 6 random base36 characters.
// The gateway treats out_trade_no as the external order identity, so the
// suffix only has to make same-second collisions unlikely; the repository
// still enforces uniqueness.
func GenerateOrderNumber() string {
	now := time.Now()
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Chars[rand.Intn(len(base36Chars))]
	}
	return fmt.Sprintf("%s-%s-%s", now.Format("20060102"), now.Format("150405"), suffix)
}
