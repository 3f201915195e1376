package intake_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	intake "github.com/StanfordCorporation/intake-engine"
)

func TestVisible_Deterministic(t *testing.T) {
	idx := chainIndex(t)
	answers := map[string]string{"flood_zone": "yes", "flood_claims": "yes"}

	first := intake.Visible(idx, answers)
	second := intake.Visible(idx, answers)
	require.Equal(t, first, second)
	require.Contains(t, first, "flood_payout")

	// The resolver never touches its input.
	require.Equal(t, map[string]string{"flood_zone": "yes", "flood_claims": "yes"}, answers)
}

func TestVisible_CaseInsensitiveComparison(t *testing.T) {
	idx := chainIndex(t)

	vis := intake.Visible(idx, map[string]string{"flood_zone": "YES"})
	require.Contains(t, vis, "flood_claims")

	vis = intake.Visible(idx, map[string]string{"flood_zone": "nope"})
	require.NotContains(t, vis, "flood_claims")
}

func TestVisible_UnansweredParentHidesChild(t *testing.T) {
	idx := chainIndex(t)
	vis := intake.Visible(idx, map[string]string{})
	require.Contains(t, vis, "flood_zone")
	require.NotContains(t, vis, "flood_claims")
	require.NotContains(t, vis, "flood_payout")
}
