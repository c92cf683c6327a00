package geodist_test

import (
	"testing"

	"moving-offer-service/pkg/geodist"
)

func TestEstimateKm_KnownPair(t *testing.T) {
	from := "Bahnhofstrasse 10, 8001 Zürich"
	to := "Hauptstrasse 5, 3011 Bern"

	km := geodist.EstimateKm(from, to)

	// Great-circle Zürich-Bern is ~95.5 km; ×1.3 road factor, rounded.
	if km != 124 {
		t.Errorf("expected 124 km for Zürich-Bern, got %v", km)
	}
}

func TestEstimateKm_Symmetric(t *testing.T) {
	a := "Basel, Marktplatz 1"
	b := "Via Nassa 3, Lugano"

	if got, want := geodist.EstimateKm(a, b), geodist.EstimateKm(b, a); got != want {
		t.Errorf("estimate not symmetric: %v vs %v", got, want)
	}
}

func TestEstimateKm_Deterministic(t *testing.T) {
	from := "Luzern"
	to := "Chur"

	first := geodist.EstimateKm(from, to)
	for i := 0; i < 5; i++ {
		if got := geodist.EstimateKm(from, to); got != first {
			t.Fatalf("estimate changed between calls: %v vs %v", got, first)
		}
	}
}

func TestEstimateKm_CaseInsensitiveAndASCIIVariant(t *testing.T) {
	withUmlaut := geodist.EstimateKm("ZÜRICH", "bern")
	withoutUmlaut := geodist.EstimateKm("zurich", "BERN")

	if withUmlaut != withoutUmlaut {
		t.Errorf("zürich/zurich spellings disagree: %v vs %v", withUmlaut, withoutUmlaut)
	}
}

func TestEstimateKm_ClampsToMinimum(t *testing.T) {
	// Same city on both ends: straight-line distance 0, clamped to MinKm.
	km := geodist.EstimateKm("Zug Altstadt", "Baarerstrasse 100, Zug")

	if km != geodist.MinKm {
		t.Errorf("expected clamp to %d km, got %v", geodist.MinKm, km)
	}
}

func TestEstimateKm_UnknownAddressFallsBack(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{"both unknown", "Atlantis", "El Dorado"},
		{"origin unknown", "Nowhere 12", "Bern"},
		{"destination unknown", "Zürich", "Nowhere 12"},
		{"empty addresses", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if km := geodist.EstimateKm(tc.from, tc.to); km != geodist.FallbackKm {
				t.Errorf("expected fallback %d km, got %v", geodist.FallbackKm, km)
			}
		})
	}
}

func TestEstimateKm_ResolvedPairNeverBelowMinimum(t *testing.T) {
	// Winterthur is close to Zürich but still above the clamp once the road
	// factor is applied; any resolvable pair must be >= MinKm.
	if km := geodist.EstimateKm("Winterthur", "Zürich"); km < geodist.MinKm {
		t.Errorf("resolved pair below minimum: %v", km)
	}
}
