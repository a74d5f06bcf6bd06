package tutor

import "github.com/Eringobraugh/inf80057-assistant-backend/core"

type (
	// Section is a located excerpt of a Document.
	Section struct {
		Loc  string `json:"loc"`  // human-readable location, eg. "p.2"
		Text string `json:"text"` // body content
	}

	// Document is an authorised file the assistant may answer from.
	Document struct {
		Title    string    `json:"title"`
		Href     string    `json:"href"`
		Sections []Section `json:"sections"`
	}

	// WeekRecord lists the milestones of one teaching week.
	WeekRecord struct {
		Week       WeekID   `json:"week"`
		Milestones []string `json:"milestones"`
	}

	Citation struct {
		Title string `json:"title"`
		Href  string `json:"href"`
		Loc   string `json:"loc"`
	}

	AnswerResult struct {
		Answer          string     `json:"answer"`
		Citations       []Citation `json:"citations"` // at most one
		SocraticPrompts []string   `json:"socratic_prompts"`
		Refusal         bool       `json:"refusal"`
	}

	Ref struct {
		Title string `json:"title"`
		Loc   string `json:"loc"`
	}

	ChecklistResult struct {
		Checklist []string `json:"checklist"`
		Refs      []Ref    `json:"refs"`
	}

	// Health is reported by the health probe.
	Health struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
)

// Context policies & modes
const (
	PolicyAuthoritativeOnly = "authoritative_only"
	ModeTutor               = "tutor"

	DefaultContextPolicy = PolicyAuthoritativeOnly
	DefaultMode          = ModeTutor
)

// Question is a student question along with how it should be answered.
// ContextPolicy and Mode are carried for the API contract; resolution ignores them.
type Question struct {
	Role          string
	Text          string
	ContextPolicy string
	Mode          string
}

// NewQuestion falls back to DefaultContextPolicy and DefaultMode for options that were not provided.
func NewQuestion(role, text string, contextPolicy, mode *string) Question {
	return Question{
		Role:          role,
		Text:          text,
		ContextPolicy: core.StringOr(contextPolicy, DefaultContextPolicy),
		Mode:          core.StringOr(mode, DefaultMode),
	}
}
