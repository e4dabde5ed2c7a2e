package weather

import (
	"testing"

	"city-weather/internal/domain/model"
)

func TestSelectCandidateEmpty(t *testing.T) {
	if _, ok := selectCandidate(nil); ok {
		t.Fatal("expected no selection for empty candidate list")
	}
	if _, ok := selectCandidate([]model.LocationCandidate{}); ok {
		t.Fatal("expected no selection for empty candidate list")
	}
}

// TestSelectCandidatePrefersLargerCity covers two same-named places where the
// well-known city must win over the small village.
func TestSelectCandidatePrefersLargerCity(t *testing.T) {
	candidates := []model.LocationCandidate{
		{Name: "Springfield", Population: 2000, FeatureCode: "P"},
		{Name: "Springfield", Population: 150000, FeatureCode: "P", Admin1: "Illinois"},
	}

	selected, ok := selectCandidate(candidates)
	if !ok {
		t.Fatal("expected a selection")
	}
	if selected.Admin1 != "Illinois" {
		t.Fatalf("expected the Illinois candidate, got %+v", selected)
	}
}

func TestSelectCandidateMaximality(t *testing.T) {
	candidates := []model.LocationCandidate{
		{Name: "a", Population: 500},
		{Name: "b", Population: 0, FeatureCode: "PPLC", Admin1: "Region"},
		{Name: "c", Population: 20000},
		{Name: "d", Population: 3000, FeatureCode: "T"},
	}

	selected, ok := selectCandidate(candidates)
	if !ok {
		t.Fatal("expected a selection")
	}

	best := scoreCandidate(selected)
	for _, candidate := range candidates {
		if score := scoreCandidate(candidate); score > best {
			t.Fatalf("candidate %s scores %d, above selected %s with %d",
				candidate.Name, score, selected.Name, best)
		}
	}
	if selected.Name != "c" {
		t.Fatalf("expected candidate c, got %s", selected.Name)
	}
}

func TestSelectCandidateTieKeepsOrder(t *testing.T) {
	candidates := []model.LocationCandidate{
		{Name: "first", Population: 1000},
		{Name: "second", Population: 1000},
	}

	selected, _ := selectCandidate(candidates)
	if selected.Name != "first" {
		t.Fatalf("tie must keep geocoder order, got %s", selected.Name)
	}
}

func TestScoreCandidateBonuses(t *testing.T) {
	base := model.LocationCandidate{Population: 100}
	if got := scoreCandidate(base); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}

	populated := model.LocationCandidate{Population: 100, FeatureCode: "PPLA2"}
	if got := scoreCandidate(populated); got != 10100 {
		t.Fatalf("expected populated place bonus, got %d", got)
	}

	full := model.LocationCandidate{Population: 100, FeatureCode: "P", Admin1: "Bavaria"}
	if got := scoreCandidate(full); got != 15100 {
		t.Fatalf("expected both bonuses, got %d", got)
	}

	terrain := model.LocationCandidate{Population: 100, FeatureCode: "T"}
	if got := scoreCandidate(terrain); got != 100 {
		t.Fatalf("terrain feature must not get the populated place bonus, got %d", got)
	}
}
