// internal/scoring/models.go
package scoring

// Factors are the admission-chance sub-scores, each clamped to [0,100] and
// rounded for display.
type Factors struct {
	ENTScore     float64 `json:"entScore"`
	GPA          float64 `json:"gpa"`
	Achievements float64 `json:"achievements"`
	Competition  float64 `json:"competition"`
}

// AdmissionChanceResult is the output of a single chance computation. Created
// fresh per call, never mutated afterwards.
type AdmissionChanceResult struct {
	UniversityID    string   `json:"universityId"`
	ProgramID       string   `json:"programId"`
	Chance          int      `json:"chance"`
	Factors         Factors  `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// Preferences describe what a student is looking for when matching
// universities. "any" disables the corresponding constraint.
type Preferences struct {
	Interests []string `json:"interests"`
	City      string   `json:"city"`
	Budget    string   `json:"budget"`   // low, medium, high or any
	ENTScore  int      `json:"entScore"`
	Language  string   `json:"language"` // russian, english or any
}

// MatchResult is a single ranked match.
type MatchResult struct {
	UniversityID string   `json:"universityId"`
	MatchScore   int      `json:"matchScore"`
	Reasons      []string `json:"reasons"`
}
