// internal/ai/fallback.go
package ai

import (
	"context"
	"strings"
)

// FallbackResponder is the terminal provider: a keyword-matched canned
// responder with no I/O. It cannot fail, which keeps the chain contract total.
type FallbackResponder struct{}

func NewFallbackResponder() *FallbackResponder {
	return &FallbackResponder{}
}

func (f *FallbackResponder) Name() string {
	return "fallback"
}

// category holds the first-match-wins keyword routing table. Order matters for
// determinism and is part of the contract.
type category struct {
	keywords []string
	response string
}

var categories = []category{
	{
		keywords: []string{"admission", "chance", "ent", "exam", "apply"},
		response: "Admission chances depend mostly on your ENT score, GPA and portfolio. " +
			"Check the program's minimum ENT requirement on its catalog page, and use the " +
			"admission-chance calculator to see how your profile compares.",
	},
	{
		keywords: []string{"cost", "tuition", "price", "fee", "expensive"},
		response: "Tuition varies widely between universities. Each catalog entry lists a " +
			"tuition range and a budget tier; filter by budget in the matching tool to find " +
			"options that fit your finances.",
	},
	{
		keywords: []string{"grant", "scholarship", "stipend", "funding"},
		response: "State grants are awarded through the national ENT competition, and many " +
			"universities offer their own merit scholarships. A higher ENT score and olympiad " +
			"results significantly improve your funding options.",
	},
	{
		keywords: []string{"dorm", "dormitory", "housing", "accommodation"},
		response: "Most universities in the catalog provide dormitories, though places are " +
			"limited and usually prioritized for students from other cities. Contact the " +
			"university's admission office early to reserve accommodation.",
	},
	{
		keywords: []string{"document", "deadline", "application", "certificate"},
		response: "A typical application needs your school certificate, ENT certificate, ID, " +
			"photos and a medical form. Deadlines differ per university, so verify them on the " +
			"official admission pages well in advance.",
	},
}

const defaultResponse = "I can help you explore universities and programs, estimate your " +
	"admission chances, and suggest ways to strengthen your application. Ask me about " +
	"admissions, tuition, grants, dormitories or required documents."

// Generate routes the prompt to a canned response by keyword. Deterministic:
// identical prompts always produce byte-identical output.
func (f *FallbackResponder) Generate(_ context.Context, req *Request) (string, error) {
	prompt := strings.ToLower(req.Prompt)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(prompt, kw) {
				return c.response, nil
			}
		}
	}
	return defaultResponse, nil
}
