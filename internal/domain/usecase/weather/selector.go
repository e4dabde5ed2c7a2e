package weather

import (
	"city-weather/internal/domain/model"
)

const (
	populatedPlaceBonus = 10000
	adminRegionBonus    = 5000
)

// scoreCandidate computes a comparable score for a geocoder candidate.
// Population dominates, so a well-known city outranks a village or hamlet
// sharing its name. Feature codes follow the GeoNames convention: class 'P'
// (bare "P" or "PPL*" codes) marks a populated place.
func scoreCandidate(candidate model.LocationCandidate) int64 {
	score := candidate.Population

	if candidate.FeatureCode != "" && candidate.FeatureCode[0] == 'P' {
		score += populatedPlaceBonus
	}
	if candidate.Admin1 != "" {
		score += adminRegionBonus
	}

	return score
}

// selectCandidate picks the highest scoring candidate. Ties keep the
// geocoder's original order. The second return value is false when the
// candidate list is empty.
func selectCandidate(candidates []model.LocationCandidate) (model.LocationCandidate, bool) {
	if len(candidates) == 0 {
		return model.LocationCandidate{}, false
	}

	best := candidates[0]
	bestScore := scoreCandidate(best)
	for _, candidate := range candidates[1:] {
		if score := scoreCandidate(candidate); score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best, true
}
