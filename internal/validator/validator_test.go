package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stemsi/exstem-cli/internal/model"
)

func TestStructAcceptsValidDrafts(t *testing.T) {
	tests := []struct {
		name  string
		draft model.QuestionDraft
	}{
		{"true false", model.QuestionDraft{Type: model.QuestionTypeTrueFalse, Body: "Go has generics", Mark: 5, RightAnswer: 1}},
		{"multiple choice two", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Pick", Mark: 1, Answers: []string{"a", "b"}, RightAnswer: 2}},
		{"multiple choice four", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Pick", Mark: 3, Answers: []string{"a", "b", "c", "d"}, RightAnswer: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := Struct(tt.draft); errs != nil {
				t.Fatalf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestStructRejectsInvalidDrafts(t *testing.T) {
	tests := []struct {
		name  string
		draft model.QuestionDraft
		field string
	}{
		{"empty body", model.QuestionDraft{Type: model.QuestionTypeTrueFalse, Mark: 5, RightAnswer: 1}, "question"},
		{"mark above limit", model.QuestionDraft{Type: model.QuestionTypeTrueFalse, Body: "Q", Mark: model.MaxMark + 1, RightAnswer: 1}, "mark"},
		{"zero mark", model.QuestionDraft{Type: model.QuestionTypeTrueFalse, Body: "Q", RightAnswer: 1}, "mark"},
		{"unknown type", model.QuestionDraft{Type: "ESSAY", Body: "Q", Mark: 1, RightAnswer: 1}, "question type"},
		{"true false out of range", model.QuestionDraft{Type: model.QuestionTypeTrueFalse, Body: "Q", Mark: 1, RightAnswer: 3}, "right answer"},
		{"zero right answer", model.QuestionDraft{Type: model.QuestionTypeTrueFalse, Body: "Q", Mark: 1}, "right answer"},
		{"no choices", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Q", Mark: 1, RightAnswer: 1}, "answers"},
		{"one choice", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Q", Mark: 1, Answers: []string{"a"}, RightAnswer: 1}, "answers"},
		{"five choices", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Q", Mark: 1, Answers: []string{"a", "b", "c", "d", "e"}, RightAnswer: 1}, "answers"},
		{"blank choice", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Q", Mark: 1, Answers: []string{"a", ""}, RightAnswer: 1}, "answers[1]"},
		{"right answer past choices", model.QuestionDraft{Type: model.QuestionTypeMultipleChoice, Body: "Q", Mark: 1, Answers: []string{"a", "b", "c"}, RightAnswer: 4}, "right answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.draft)
			if errs == nil {
				t.Fatalf("expected validation errors")
			}
			msg, ok := errs[tt.field]
			if !ok {
				t.Fatalf("expected error on %q, got %v", tt.field, errs)
			}
			if !strings.Contains(msg, tt.field) {
				t.Fatalf("expected translated message to mention %q, got %q", tt.field, msg)
			}
		})
	}
}

func TestTranslateErrorsNonValidation(t *testing.T) {
	errs := TranslateErrors(errors.New("boom"))
	if errs["detail"] != "boom" {
		t.Fatalf("expected detail entry, got %v", errs)
	}
}

func TestSummaryOrdersByField(t *testing.T) {
	got := Summary(map[string]string{"mark": "mark is bad", "answers": "answers are bad"})
	if got != "answers are bad; mark is bad" {
		t.Fatalf("unexpected summary %q", got)
	}
}
