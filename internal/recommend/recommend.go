// internal/recommend/recommend.go
package recommend

import (
	"fmt"

	"unihub-api/internal/models"
)

// Advice strings are emitted in a fixed priority order and never duplicated,
// so callers and tests can rely on the exact sequence.
const (
	adviceImproveGPA       = "Improve your average grade: aim for a GPA of 4.0 or higher"
	adviceOlympiads        = "Participate in olympiads to strengthen your application"
	adviceAchievements     = "Add more achievements to your portfolio"
	adviceAlternatives     = "Consider alternative programs or universities as a backup"
	adviceStrongPortfolio  = "Your portfolio looks strong for this program, keep it up"
	gpaThreshold           = 4.0
	minAchievementsDesired = 3
	lowChanceThreshold     = 50
)

func adviceRaiseENT(minENT int) string {
	return fmt.Sprintf("Raise your ENT score to %d or above for this program", minENT)
}

// Generate translates portfolio gaps and the computed chance into an ordered
// list of advice strings. When nothing triggers, it returns a single positive
// confirmation instead of an empty list.
func Generate(portfolio *models.Portfolio, minENT int, chance int) []string {
	var out []string

	if portfolio.ENTScore != nil && *portfolio.ENTScore < minENT {
		out = append(out, adviceRaiseENT(minENT))
	}
	if portfolio.GPA != nil && *portfolio.GPA < gpaThreshold {
		out = append(out, adviceImproveGPA)
	}
	if len(portfolio.Olympiads) == 0 {
		out = append(out, adviceOlympiads)
	}
	if len(portfolio.Achievements) < minAchievementsDesired {
		out = append(out, adviceAchievements)
	}
	if chance < lowChanceThreshold {
		out = append(out, adviceAlternatives)
	}

	if len(out) == 0 {
		out = append(out, adviceStrongPortfolio)
	}
	return out
}
