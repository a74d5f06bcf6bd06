package tutor

import (
	"reflect"
	"testing"
)

func testCorpus() []Document {
	return []Document{
		{
			Title: "Assessment Guide v1.0",
			Href:  "/docs/assessment-guide.pdf",
			Sections: []Section{
				{Loc: "p.1", Text: "Section 1 describes the assessment tasks for the unit."},
				{Loc: "p.2", Text: "Group work is assessed with peer evaluation and a reflective journal."},
			},
		},
		{
			Title: "Unit Outline",
			Href:  "/docs/unit-outline.pdf",
			Sections: []Section{
				{Loc: "s.3", Text: "Reflective journal entries are submitted every fortnight."},
				{Loc: "s.4", Text: "Client meetings happen on Thursdays."},
			},
		},
	}
}

func TestResolve(t *testing.T) {
	corpus := testCorpus()
	keywordAnswer := AnswerResult{
		Answer:          KeywordAnswer,
		Citations:       []Citation{{Title: "Assessment Guide v1.0", Href: "/docs/assessment-guide.pdf", Loc: "p.1"}},
		SocraticPrompts: []string{KeywordPrompt},
	}

	tests := []struct {
		name     string
		question string
		corpus   []Document
		want     AnswerResult
	}{
		{name: "keyword: task 1", question: "When is Task 1 due?", corpus: corpus, want: keywordAnswer},
		{name: "keyword: week 4", question: "  what happens in WEEK 4  ", corpus: corpus, want: keywordAnswer},
		{name: "keyword: proposal", question: "proposal format", corpus: corpus, want: keywordAnswer},
		{name: "keyword: planning document", question: "Planning Document length?", corpus: corpus, want: keywordAnswer},
		{name: "keyword inside another word", question: "what is the residue", corpus: corpus, want: keywordAnswer},
		{
			name: "overlap: first document wins", question: "how is the journal marked", corpus: corpus,
			want: AnswerResult{
				Answer:          "Group work is assessed with peer evaluation and a reflective journal.",
				Citations:       []Citation{{Title: "Assessment Guide v1.0", Href: "/docs/assessment-guide.pdf", Loc: "p.2"}},
				SocraticPrompts: []string{OverlapPrompt},
			},
		},
		{
			name: "overlap: first section wins", question: "ASSESSMENT?", corpus: corpus,
			want: AnswerResult{
				Answer:          "Section 1 describes the assessment tasks for the unit.",
				Citations:       []Citation{{Title: "Assessment Guide v1.0", Href: "/docs/assessment-guide.pdf", Loc: "p.1"}},
				SocraticPrompts: []string{OverlapPrompt},
			},
		},
		{
			name: "overlap: later document", question: "client meetings", corpus: corpus,
			want: AnswerResult{
				Answer:          "Client meetings happen on Thursdays.",
				Citations:       []Citation{{Title: "Unit Outline", Href: "/docs/unit-outline.pdf", Loc: "s.4"}},
				SocraticPrompts: []string{OverlapPrompt},
			},
		},
		{name: "short words are ignored", question: "how is it on the", corpus: corpus, want: Refusal()},
		{name: "no match", question: "asdf zzzz", corpus: corpus, want: Refusal()},
		{name: "empty question", question: "", corpus: corpus, want: Refusal()},
		{name: "blank question", question: " \t ", corpus: corpus, want: Refusal()},
		{name: "question marks only", question: "????", corpus: corpus, want: Refusal()},
		{name: "keyword with empty corpus", question: "When is Task 1 due?", want: Refusal()},
		{name: "empty corpus", question: "assessment", corpus: []Document{}, want: Refusal()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.question, tt.corpus); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_edgeSections(t *testing.T) {
	t.Run("keyword with section-less first document", func(t *testing.T) {
		corpus := []Document{{Title: "Empty", Href: "/e"}}
		got := Resolve("proposal", corpus)
		want := []Citation{{Title: "Empty", Href: "/e"}}
		if got.Refusal || !reflect.DeepEqual(got.Citations, want) {
			t.Errorf("Resolve() = %+v, want citations %+v", got, want)
		}
	})

	t.Run("sections without text never match", func(t *testing.T) {
		corpus := []Document{{Title: "T", Href: "/t", Sections: []Section{{Loc: "p.1"}}}}
		if got := Resolve("anything here", corpus); !got.Refusal {
			t.Errorf("Resolve() = %+v, want refusal", got)
		}
	})

	t.Run("matching is case-insensitive on section text", func(t *testing.T) {
		corpus := []Document{{Title: "T", Href: "/t", Sections: []Section{{Loc: "p.9", Text: "The RUBRIC is attached."}}}}
		got := Resolve("Rubric", corpus)
		if got.Refusal || got.Answer != "The RUBRIC is attached." {
			t.Errorf("Resolve() = %+v, want raw section text", got)
		}
	})
}

func TestResolve_invariants(t *testing.T) {
	corpus := testCorpus()
	questions := []string{"When is Task 1 due?", "journal", "asdf zzzz", "", "client?", "Thursdays"}
	for _, q := range questions {
		first := Resolve(q, corpus)
		if second := Resolve(q, corpus); !reflect.DeepEqual(first, second) {
			t.Errorf("Resolve(%q) is not idempotent: %+v != %+v", q, first, second)
		}
		refused := first.Answer == RefusalMessage
		if first.Refusal != refused || first.Refusal != (len(first.Citations) == 0) {
			t.Errorf("Resolve(%q) = %+v breaks refusal/citations/answer agreement", q, first)
		}
		if len(first.Citations) > 1 {
			t.Errorf("Resolve(%q) returned %d citations", q, len(first.Citations))
		}
	}
	if !reflect.DeepEqual(corpus, testCorpus()) {
		t.Error("Resolve() modified the corpus")
	}
}

func Test_questionWords(t *testing.T) {
	tests := []struct {
		q    string
		want []string
	}{
		{q: "", want: []string{}},
		{q: "when is the exam?", want: []string{"when", "exam"}},
		{q: "what?about   this", want: []string{"what", "about", "this"}},
		{q: "été café", want: []string{"café"}},
	}
	for _, tt := range tests {
		got := questionWords(tt.q)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("questionWords(%q) = %q, want %q", tt.q, got, tt.want)
		}
	}
}
