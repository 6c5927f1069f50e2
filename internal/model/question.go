package model

import (
	"errors"
	"fmt"
)

// QuestionType enumerates the supported question variants.
type QuestionType string

const (
	QuestionTypeTrueFalse      QuestionType = "TRUE_FALSE"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

// Label returns the operator-facing name of the question type.
func (t QuestionType) Label() string {
	switch t {
	case QuestionTypeTrueFalse:
		return "True/False"
	case QuestionTypeMultipleChoice:
		return "Multiple Choice"
	default:
		return string(t)
	}
}

const (
	MinChoices = 2
	MaxChoices = 4

	// MaxBodyLength and MaxMark mirror the max tags on QuestionDraft.
	MaxBodyLength = 2000
	MaxMark       = 1000
)

var ErrUnknownQuestionType = errors.New("unknown question type")

// Question is the capability set shared by every question variant.
type Question interface {
	Type() QuestionType
	Body() string
	Mark() int
	// Answers returns a copy of the answer options in display order.
	Answers() []Answer
	RightAnswer() int
	// AnswerText looks up the text of the answer with the given id.
	AnswerText(id int) (string, bool)
	// ValidateAnswer reports whether id is an acceptable submission.
	ValidateAnswer(id int) bool
	// Display returns one rendered line per answer option.
	Display() []string
}

type question struct {
	body        string
	mark        int
	answers     []Answer
	rightAnswer int
}

func (q *question) Body() string     { return q.body }
func (q *question) Mark() int        { return q.mark }
func (q *question) RightAnswer() int { return q.rightAnswer }

func (q *question) Answers() []Answer {
	out := make([]Answer, len(q.answers))
	copy(out, q.answers)
	return out
}

func (q *question) AnswerText(id int) (string, bool) {
	for _, a := range q.answers {
		if a.ID == id {
			return a.Text, true
		}
	}
	return "", false
}

// TrueFalse is a question with the fixed answers 1 "True" and 2 "False".
type TrueFalse struct {
	question
}

// NewTrueFalse creates a TrueFalse question. rightAnswer must be 1 or 2.
func NewTrueFalse(body string, mark, rightAnswer int) *TrueFalse {
	return &TrueFalse{question{
		body:        body,
		mark:        mark,
		answers:     []Answer{NewAnswer(1, "True"), NewAnswer(2, "False")},
		rightAnswer: rightAnswer,
	}}
}

func (q *TrueFalse) Type() QuestionType { return QuestionTypeTrueFalse }

// ValidateAnswer accepts exactly 1 and 2. The range is hard-coded rather than
// derived from the answer list, which always holds exactly those two entries.
func (q *TrueFalse) ValidateAnswer(id int) bool {
	return id == 1 || id == 2
}

func (q *TrueFalse) Display() []string {
	return []string{"1. True", "2. False"}
}

// MultipleChoice is a question with 2 to 4 authored answers.
type MultipleChoice struct {
	question
}

// NewMultipleChoice creates a MultipleChoice question, numbering the answer
// texts sequentially from 1 in the given order.
func NewMultipleChoice(body string, mark int, texts []string, rightAnswer int) *MultipleChoice {
	answers := make([]Answer, 0, len(texts))
	for i, text := range texts {
		answers = append(answers, NewAnswer(i+1, text))
	}
	return &MultipleChoice{question{
		body:        body,
		mark:        mark,
		answers:     answers,
		rightAnswer: rightAnswer,
	}}
}

func (q *MultipleChoice) Type() QuestionType { return QuestionTypeMultipleChoice }

// ValidateAnswer checks range membership in [1, len(answers)], not membership
// of the id itself. The two coincide while ids stay sequential from 1.
func (q *MultipleChoice) ValidateAnswer(id int) bool {
	return id >= 1 && id <= len(q.answers)
}

func (q *MultipleChoice) Display() []string {
	lines := make([]string, len(q.answers))
	for i, a := range q.answers {
		lines[i] = fmt.Sprintf("%d. %s", a.ID, a.Text)
	}
	return lines
}

// QuestionDraft collects the operator's input for one question before it is
// turned into a Question.
type QuestionDraft struct {
	Type        QuestionType `label:"question type" validate:"required,oneof=TRUE_FALSE MULTIPLE_CHOICE"`
	Body        string       `label:"question" validate:"required,max=2000"`
	Mark        int          `label:"mark" validate:"min=1,max=1000"`
	Answers     []string     `label:"answers" validate:"omitempty,min=2,max=4,dive,required"`
	RightAnswer int          `label:"right answer" validate:"min=1"`
}

// Build converts a validated draft into the matching Question variant.
func (d QuestionDraft) Build() (Question, error) {
	switch d.Type {
	case QuestionTypeTrueFalse:
		return NewTrueFalse(d.Body, d.Mark, d.RightAnswer), nil
	case QuestionTypeMultipleChoice:
		return NewMultipleChoice(d.Body, d.Mark, d.Answers, d.RightAnswer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionType, d.Type)
	}
}
