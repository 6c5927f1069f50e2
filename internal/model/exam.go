package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExamType enumerates the exam variants.
type ExamType string

const (
	// ExamTypeFinal is time-boxed and scores silently.
	ExamTypeFinal ExamType = "FINAL"
	// ExamTypePractical is untimed and gives feedback after every question.
	ExamTypePractical ExamType = "PRACTICAL"
)

// Label returns the operator-facing name of the exam type.
func (t ExamType) Label() string {
	switch t {
	case ExamTypeFinal:
		return "Final"
	case ExamTypePractical:
		return "Practical"
	default:
		return string(t)
	}
}

// ExamStatus enumerates the possible states of an exam run.
type ExamStatus string

const (
	ExamStatusNotStarted ExamStatus = "NOT_STARTED"
	ExamStatusInProgress ExamStatus = "IN_PROGRESS"
	ExamStatusCompleted  ExamStatus = "COMPLETED"
)

var (
	ErrExamAlreadyBuilt   = errors.New("exam already built")
	ErrExamAlreadyStarted = errors.New("exam already started")
	ErrExamNotInProgress  = errors.New("exam is not in progress")
)

// Exam is an ordered set of questions taken in a single run.
// The question list is fixed once the exam has been built.
type Exam struct {
	ID                    uuid.UUID
	Type                  ExamType
	Duration              time.Duration
	ExpectedQuestionCount int

	questions []Question
	status    ExamStatus
	startedAt time.Time
}

// Questions returns the questions in answering order.
func (e *Exam) Questions() []Question {
	out := make([]Question, len(e.questions))
	copy(out, e.questions)
	return out
}

// TotalMarks sums the marks of every authored question.
func (e *Exam) TotalMarks() int {
	total := 0
	for _, q := range e.questions {
		total += q.Mark()
	}
	return total
}

func (e *Exam) Status() ExamStatus   { return e.status }
func (e *Exam) StartedAt() time.Time { return e.startedAt }

// Start moves the exam from NOT_STARTED to IN_PROGRESS and records now as the start time.
func (e *Exam) Start(now time.Time) error {
	if e.status != ExamStatusNotStarted {
		return fmt.Errorf("%w: status is %s", ErrExamAlreadyStarted, e.status)
	}
	e.status = ExamStatusInProgress
	e.startedAt = now
	return nil
}

// Complete moves an in-progress exam to COMPLETED.
func (e *Exam) Complete() error {
	if e.status != ExamStatusInProgress {
		return fmt.Errorf("%w: status is %s", ErrExamNotInProgress, e.status)
	}
	e.status = ExamStatusCompleted
	return nil
}

// ExamBuilder accumulates questions during authoring and produces an Exam.
type ExamBuilder struct {
	exam  *Exam
	built bool
}

// NewExamBuilder starts a new exam of the given type.
func NewExamBuilder(examType ExamType, duration time.Duration, expectedQuestionCount int) *ExamBuilder {
	return &ExamBuilder{
		exam: &Exam{
			ID:                    uuid.New(),
			Type:                  examType,
			Duration:              duration,
			ExpectedQuestionCount: expectedQuestionCount,
			status:                ExamStatusNotStarted,
		},
	}
}

// AddQuestion appends q to the end of the answering order.
func (b *ExamBuilder) AddQuestion(q Question) error {
	if b.built {
		return ErrExamAlreadyBuilt
	}
	b.exam.questions = append(b.exam.questions, q)
	return nil
}

// Len returns the number of questions added so far.
func (b *ExamBuilder) Len() int {
	return len(b.exam.questions)
}

// Build finalizes the exam. The builder cannot be used afterwards.
func (b *ExamBuilder) Build() (*Exam, error) {
	if b.built {
		return nil, ErrExamAlreadyBuilt
	}
	b.built = true
	return b.exam, nil
}
