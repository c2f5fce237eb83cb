// internal/models/portfolio.go
package models

// OlympiadLevel is the competition tier of an olympiad entry.
type OlympiadLevel string

const (
	OlympiadRegional      OlympiadLevel = "regional"
	OlympiadRepublican    OlympiadLevel = "republican"
	OlympiadInternational OlympiadLevel = "international"
)

// LanguageLevel is a self-reported proficiency tier.
type LanguageLevel string

const (
	LanguageBasic        LanguageLevel = "basic"
	LanguageIntermediate LanguageLevel = "intermediate"
	LanguageAdvanced     LanguageLevel = "advanced"
	LanguageNative       LanguageLevel = "native"
)

// Olympiad is a single olympiad participation record.
type Olympiad struct {
	Name  string        `json:"name"`
	Level OlympiadLevel `json:"level"`
	Year  int           `json:"year"`
	Place int           `json:"place,omitempty"`
}

// LanguageSkill is a self-reported language proficiency.
type LanguageSkill struct {
	Language string        `json:"language"`
	Level    LanguageLevel `json:"level"`
}

// Priorities weight what the student cares about, each on [0,100].
type Priorities struct {
	Prestige       int `json:"prestige"`
	Cost           int `json:"cost"`
	Location       int `json:"location"`
	Specialization int `json:"specialization"`
}

// Portfolio is a student's self-reported academic profile. Optional scalar
// fields are pointers; nil means the student has not filled them in yet.
type Portfolio struct {
	ENTScore     *int            `json:"entScore,omitempty"` // national exam, [0,140]
	GPA          *float64        `json:"gpa,omitempty"`      // [0,5]
	IELTSScore   *float64        `json:"ieltsScore,omitempty"`
	TOEFLScore   *float64        `json:"toeflScore,omitempty"`
	Achievements []string        `json:"achievements"`
	Olympiads    []Olympiad      `json:"olympiads"`
	Languages    []LanguageSkill `json:"languages"`
	Priorities   Priorities      `json:"priorities"`
}

// NewPortfolio returns an empty portfolio with default priorities.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Achievements: []string{},
		Olympiads:    []Olympiad{},
		Languages:    []LanguageSkill{},
		Priorities: Priorities{
			Prestige:       50,
			Cost:           50,
			Location:       50,
			Specialization: 50,
		},
	}
}
