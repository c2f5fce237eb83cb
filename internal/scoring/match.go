// internal/scoring/match.go
package scoring

import (
	"fmt"
	"math"
	"sort"

	"unihub-api/internal/catalog"
)

const (
	anyValue = "any"

	interestWeight = 40.0
	cityPoints     = 15
	budgetPoints   = 20
	entPoints      = 15
	languagePoints = 10

	maxMatchResults = 5

	englishTag      = "english"
	englishLanguage = "english"
)

// MatchUniversities ranks catalog entries against a preference set and returns
// at most five results, best first. Sorting is stable, so candidates with the
// same score keep their catalog order.
func MatchUniversities(prefs Preferences, candidates []catalog.UniversityRecord) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for i := range candidates {
		results = append(results, scoreCandidate(prefs, &candidates[i]))
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].MatchScore > results[b].MatchScore
	})

	if len(results) > maxMatchResults {
		results = results[:maxMatchResults]
	}
	return results
}

func scoreCandidate(prefs Preferences, candidate *catalog.UniversityRecord) MatchResult {
	var score float64
	var reasons []string

	if matches := interestMatches(prefs.Interests, candidate); matches > 0 {
		score += float64(matches) / math.Max(1, float64(len(prefs.Interests))) * interestWeight
		reasons = append(reasons, fmt.Sprintf("%d interest matches", matches))
	}

	if prefs.City == anyValue || prefs.City == "" || prefs.City == candidate.City {
		score += cityPoints
		if prefs.City == candidate.City && prefs.City != anyValue && prefs.City != "" {
			reasons = append(reasons, fmt.Sprintf("Located in %s", candidate.City))
		}
	}

	if prefs.Budget == anyValue || prefs.Budget == "" || prefs.Budget == candidate.BudgetTier {
		score += budgetPoints
		if prefs.Budget == candidate.BudgetTier && prefs.Budget != anyValue && prefs.Budget != "" {
			reasons = append(reasons, "Fits your budget")
		}
	}

	if prefs.ENTScore >= candidate.MinENT {
		score += entPoints
		reasons = append(reasons, "Your ENT score meets the admission threshold")
	}

	// Language only penalizes English-seekers at universities without an
	// English-taught track.
	if prefs.Language == englishLanguage {
		if candidate.HasTag(englishTag) {
			score += languagePoints
			reasons = append(reasons, "Offers English-language instruction")
		}
	} else {
		score += languagePoints
	}

	return MatchResult{
		UniversityID: candidate.ID,
		MatchScore:   int(math.Round(clamp(score))),
		Reasons:      reasons,
	}
}

func interestMatches(interests []string, candidate *catalog.UniversityRecord) int {
	matches := 0
	for _, interest := range interests {
		if candidate.HasTag(interest) {
			matches++
		}
	}
	return matches
}
