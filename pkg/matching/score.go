package matching

import "math"

// Category weights. Shared focus areas count more than shared hobbies.
const (
	FocusAreaWeight = 0.6
	InterestWeight  = 0.4
)

// Score returns a 0..100 compatibility score between two users.
//
// Each category scores overlap / max(|a|, |b|); a category where both sides are
// empty scores 0 but keeps its weight.
func Score(aFocus, bFocus, aInterests, bInterests TagSet) int {
	focus := overlapRatio(aFocus, bFocus)
	interests := overlapRatio(aInterests, bInterests)
	return int(math.Round((focus*FocusAreaWeight + interests*InterestWeight) * 100))
}

// ScoreProfiles is Score over two ProfileTags.
func ScoreProfiles(a, b ProfileTags) int {
	return Score(a.FocusAreas, b.FocusAreas, a.Interests, b.Interests)
}

func overlapRatio(a, b TagSet) float64 {
	denominator := max(len(a), len(b))
	if denominator == 0 {
		return 0
	}
	overlap := 0
	for _, t := range a {
		if b.Contains(t) {
			overlap++
		}
	}
	return float64(overlap) / float64(denominator)
}
