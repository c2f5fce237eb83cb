// internal/catalog/models.go
package catalog

// ProgramRequirement lists the admission requirements attached to a program.
// Reference data, immutable after load.
type ProgramRequirement struct {
	MinENT            int      `json:"minEnt"`
	MinIELTS          float64  `json:"minIelts,omitempty"`
	RequiredSubjects  []string `json:"requiredSubjects"`
	PortfolioRequired bool     `json:"portfolioRequired,omitempty"`
	InterviewRequired bool     `json:"interviewRequired,omitempty"`
}

// ProgramRecord is a degree program offered by a university.
type ProgramRecord struct {
	ID           string             `json:"id"`
	UniversityID string             `json:"universityId"`
	Name         string             `json:"name"`
	Degree       string             `json:"degree,omitempty"`
	Requirements ProgramRequirement `json:"requirements"`
}

// UniversityRecord is a catalog entry for a university. Rating is on a [0,5]
// scale; BudgetTier is one of low, medium, high.
type UniversityRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Rating     float64  `json:"rating"`
	TuitionMin int      `json:"tuitionMin"`
	TuitionMax int      `json:"tuitionMax"`
	BudgetTier string   `json:"budgetTier"`
	MinENT     int      `json:"minEnt"`
	Tags       []string `json:"tags"`
	WorldRank  int      `json:"worldRank,omitempty"`
}

// HasTag reports whether the university carries the given tag.
func (u *UniversityRecord) HasTag(tag string) bool {
	for _, t := range u.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
