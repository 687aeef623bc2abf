package processor

import (
	"strings"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// CompletenessScore rates a candidate in [0,1] as the mean of three checks:
// contact info present, at least one experience or education entry, and at
// least three skills. Pure; used only to pick between candidates.
func CompletenessScore(c types.StructuredCandidate) float64 {
	var hits int
	if strings.TrimSpace(c.Personal.Email) != "" || strings.TrimSpace(c.Personal.Phone) != "" {
		hits++
	}
	if len(c.Experience) > 0 || len(c.Education) > 0 {
		hits++
	}
	if len(c.Skills) >= 3 {
		hits++
	}
	return float64(hits) / 3.0
}
