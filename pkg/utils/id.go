package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var (
	// Counter for the fallback path when crypto/rand fails
	idCounter uint64
)

// GenerateFitID generates a fit run ID with a timestamp prefix
func GenerateFitID() string {
	timestamp := time.Now().Format("20060102-150405")
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if err != nil {
		count := atomic.AddUint64(&idCounter, 1)
		return fmt.Sprintf("fit-%s-%x", timestamp, count)
	}
	return fmt.Sprintf("fit-%s-%s", timestamp, hex.EncodeToString(b))
}
