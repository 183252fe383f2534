package sheet

import (
	"strings"

	"github.com/blockedby/recruiter-mailer/internal/models"
)

// FilterAddresses trims each entry and keeps the non-empty ones that contain
// an "@", preserving order. Duplicates and letter case are left alone.
func FilterAddresses(raw []string) []models.CandidateAddress {
	out := make([]models.CandidateAddress, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || !strings.Contains(v, "@") {
			continue
		}
		out = append(out, models.CandidateAddress(v))
	}
	return out
}
