package tutor

import (
	"strings"
	"unicode/utf8"
)

// Canned answers
const (
	KeywordAnswer = "Task 1 Part 1 is due in Week 4. It includes the Project Proposal and Planning Document."
	KeywordPrompt = "Which client constraints affect your scope before Week 4?"

	FallbackAnswer = "I can only answer from authorised files."
	OverlapPrompt  = "What evidence from the assessment guide supports your plan?"

	RefusalMessage = "I can’t answer that from the unit’s authorised files. Try the Assessment Guide v1.0, Section 1."
)

const minWordLen = 4

// keywords that always get the Task 1 / Week 4 answer, whatever else was asked.
var keywords = []string{"task 1", "week 4", "proposal", "planning document", "due"}

// Resolve answers question from corpus, or refuses.
//
// Three passes are tried in order and the first one that answers wins:
//   - any keyword in the question: the canned Task 1 answer citing the first section of the first document
//   - the first section (documents first, then sections, in corpus order) whose text contains one of the
//     question's words of at least 4 characters: that section's text
//   - a refusal
//
// There is no ranking. Resolve only reads corpus.
func Resolve(question string, corpus []Document) AnswerResult {
	q := strings.ToLower(strings.TrimSpace(question))

	if len(corpus) > 0 && containsAny(q, keywords) {
		doc := corpus[0]
		var loc string
		if len(doc.Sections) > 0 {
			loc = doc.Sections[0].Loc
		}
		return AnswerResult{
			Answer:          KeywordAnswer,
			Citations:       []Citation{{Title: doc.Title, Href: doc.Href, Loc: loc}},
			SocraticPrompts: []string{KeywordPrompt},
		}
	}

	words := questionWords(q)
	if len(words) > 0 {
		for _, doc := range corpus {
			for _, sec := range doc.Sections {
				if !containsAny(strings.ToLower(sec.Text), words) {
					continue
				}
				answer := sec.Text
				if answer == "" {
					answer = FallbackAnswer
				}
				return AnswerResult{
					Answer:          answer,
					Citations:       []Citation{{Title: doc.Title, Href: doc.Href, Loc: sec.Loc}},
					SocraticPrompts: []string{OverlapPrompt},
				}
			}
		}
	}

	return Refusal()
}

// Refusal is the answer given when no authorised file covers the question.
func Refusal() AnswerResult {
	return AnswerResult{
		Answer:          RefusalMessage,
		Citations:       []Citation{},
		SocraticPrompts: []string{},
		Refusal:         true,
	}
}

// questionWords splits a normalised question into its words of at least minWordLen characters.
func questionWords(q string) []string {
	fields := strings.Fields(strings.ReplaceAll(q, "?", " "))
	words := fields[:0]
	for _, w := range fields {
		if utf8.RuneCountInString(w) >= minWordLen {
			words = append(words, w)
		}
	}
	return words
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
