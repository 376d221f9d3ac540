package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRentalNumber builds a rental number of the form
// RNT-20060102-9F3A21B4 from the current date and a random suffix.
// Uniqueness is still enforced by the rentals index; this only makes
// collisions vanishingly unlikely.
func GenerateRentalNumber(now time.Time) string {
	return generateDocumentNumber("RNT", now)
}

// GenerateBillNumber builds a sale bill number of the form
// BILL-20060102-9F3A21B4.
func GenerateBillNumber(now time.Time) string {
	return generateDocumentNumber("BILL", now)
}

func generateDocumentNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}
