package seed

import (
	"testing"

	"tcm-quiz-backend/internal/domain/entity"
)

var validLabels = map[string]bool{
	entity.BodyTypeQiDeficient:       true,
	entity.BodyTypeYangDeficient:     true,
	entity.BodyTypeYinDeficient:      true,
	entity.BodyTypeLiverQiStagnation: true,
	entity.BodyTypeDampHeat:          true,
	entity.BodyTypeBalanced:          true,
}

func TestQuestionsAreWellFormed(t *testing.T) {
	questions := Questions()
	if len(questions) != 7 {
		t.Fatalf("Questions() returned %d questions, want 7", len(questions))
	}

	for i, q := range questions {
		if q.QuestionOrder != i+1 {
			t.Errorf("question %d has order %d, want %d", i, q.QuestionOrder, i+1)
		}
		if q.QuestionText == "" {
			t.Errorf("question %d has no text", i)
		}
		if len(q.Options) != 6 {
			t.Errorf("question %d has %d options, want 6", i, len(q.Options))
			continue
		}
		texts := map[string]string{}
		for j, opt := range q.Options {
			wantLetter := string(rune('A' + j))
			if opt.OptionLetter != wantLetter {
				t.Errorf("question %d option %d letter = %q, want %q", i, j, opt.OptionLetter, wantLetter)
			}
			if !validLabels[opt.BodyType] {
				t.Errorf("question %d option %q carries unknown label %q", i, opt.OptionLetter, opt.BodyType)
			}
			if prev, ok := texts[opt.OptionText]; ok {
				t.Errorf("question %d options %s and %s share the text %q", i, prev, opt.OptionLetter, opt.OptionText)
			}
			texts[opt.OptionText] = opt.OptionLetter
		}
		if last := q.Options[len(q.Options)-1]; last.BodyType != entity.BodyTypeBalanced {
			t.Errorf("question %d option F label = %q, want %q", i, last.BodyType, entity.BodyTypeBalanced)
		}
	}
}

func TestResultProfilesCoverEveryLabel(t *testing.T) {
	profiles := ResultProfiles()

	seen := map[string]bool{}
	for _, p := range profiles {
		if !validLabels[p.BodyType] {
			t.Errorf("profile %q carries unknown label %q", p.Title, p.BodyType)
		}
		if seen[p.BodyType] {
			t.Errorf("duplicate profile for label %q", p.BodyType)
		}
		seen[p.BodyType] = true
		if p.Title == "" || p.Description == "" {
			t.Errorf("profile for %q is missing title or description", p.BodyType)
		}
	}

	for label := range validLabels {
		if !seen[label] {
			t.Errorf("no profile for label %q", label)
		}
	}
}

func TestPractitioners(t *testing.T) {
	practitioners := Practitioners()
	if len(practitioners) != 6 {
		t.Fatalf("Practitioners() returned %d entries, want 6", len(practitioners))
	}

	for _, p := range practitioners {
		if p.Name == "" || p.Title == "" || p.Bio == "" {
			t.Errorf("practitioner %q is missing required fields", p.Name)
		}
		if len(p.Specialties) == 0 {
			t.Errorf("practitioner %q has no specialties", p.Name)
		}
		if p.Rating.IsZero() || p.ReviewsCount == 0 {
			t.Errorf("practitioner %q has no rating data", p.Name)
		}
	}
}
