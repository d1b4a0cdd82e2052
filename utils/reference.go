package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a server-assigned booking reference like
// BK-9F2C41AB7D3E. Uniqueness is enforced by the bookings table; callers
// retry on collision.
func NewReferenceCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK-" + raw[:12]
}
