package matching

import "sort"

// Candidate is a profile that may be matched against the current user.
type Candidate struct {
	ID   string
	Tags ProfileTags
}

// Result is one entry of the match list.
type Result struct {
	CandidateID      string `json:"candidate_id"`
	Score            int    `json:"score"`
	CommonFocusAreas TagSet `json:"common_focus_areas"`
	CommonInterests  TagSet `json:"common_interests"`
}

// RankMatches scores every candidate against self, drops zero scores and sorts
// by score descending. Candidates with equal scores keep their input order.
func RankMatches(self ProfileTags, candidates []Candidate) []Result {
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		score := ScoreProfiles(self, c.Tags)
		if score == 0 {
			continue
		}
		results = append(results, Result{
			CandidateID:      c.ID,
			Score:            score,
			CommonFocusAreas: self.FocusAreas.Intersect(c.Tags.FocusAreas),
			CommonInterests:  self.Interests.Intersect(c.Tags.Interests),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
