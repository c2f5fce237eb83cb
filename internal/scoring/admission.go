// internal/scoring/admission.go
package scoring

import (
	"math"

	"unihub-api/internal/catalog"
	"unihub-api/internal/models"
	"unihub-api/internal/recommend"
)

// Factor weights. The competition factor is applied as a penalty rather than
// an additive term.
const (
	weightENT          = 0.4
	weightGPA          = 0.2
	weightAchievements = 0.3

	// defaultMinENT guards the division when a program carries no usable ENT
	// threshold.
	defaultMinENT = 50

	achievementPoints  = 5
	olympiadBasePoints = 10

	bonusRegional      = 10
	bonusRepublican    = 15
	bonusInternational = 20

	competitionPenaltyRate = 0.1
	competitionNeutral     = 50
	gpaScale               = 5.0
)

// ComputeAdmissionChance computes an admission-chance percentage for a
// portfolio against a target program and university. Pure and deterministic;
// safe to call from any number of goroutines.
//
// Missing optional fields contribute zero to their weighted term. The weights
// are intentionally not renormalized, so an incomplete profile lowers the
// ceiling rather than being excluded from the sum.
func ComputeAdmissionChance(portfolio *models.Portfolio, program *catalog.ProgramRecord, university *catalog.UniversityRecord) *AdmissionChanceResult {
	minENT := program.Requirements.MinENT
	if minENT <= 0 {
		minENT = defaultMinENT
	}

	entFactor := 0.0
	if portfolio.ENTScore != nil {
		entFactor = clamp(float64(*portfolio.ENTScore) / float64(minENT) * 100)
	}

	gpaFactor := 0.0
	if portfolio.GPA != nil {
		gpaFactor = *portfolio.GPA / gpaScale * 100
	}

	achievementFactor := clamp(achievementScore(portfolio))

	competitionFactor := university.Rating * 20
	penalty := math.Max(0, (competitionFactor-competitionNeutral)*competitionPenaltyRate)

	raw := entFactor*weightENT + gpaFactor*weightGPA + achievementFactor*weightAchievements - penalty
	chance := int(math.Round(clamp(raw)))

	return &AdmissionChanceResult{
		UniversityID: university.ID,
		ProgramID:    program.ID,
		Chance:       chance,
		Factors: Factors{
			ENTScore:     math.Round(entFactor),
			GPA:          math.Round(gpaFactor),
			Achievements: math.Round(achievementFactor),
			Competition:  math.Round(clamp(competitionFactor)),
		},
		Recommendations: recommend.Generate(portfolio, minENT, chance),
	}
}

// achievementScore awards flat points per achievement and per olympiad, plus a
// level bonus per olympiad on top of the flat amount.
func achievementScore(portfolio *models.Portfolio) float64 {
	score := float64(len(portfolio.Achievements) * achievementPoints)
	for _, o := range portfolio.Olympiads {
		score += olympiadBasePoints
		switch o.Level {
		case models.OlympiadInternational:
			score += bonusInternational
		case models.OlympiadRepublican:
			score += bonusRepublican
		case models.OlympiadRegional:
			score += bonusRegional
		}
	}
	return score
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
