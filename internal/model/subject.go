package model

import "github.com/google/uuid"

// Subject is the authoring context that owns a single exam.
type Subject struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	exam *Exam
}

// NewSubject creates a Subject without an exam.
func NewSubject(name string) *Subject {
	return &Subject{ID: uuid.New(), Name: name}
}

// Exam returns the subject's exam, or nil if none has been authored yet.
func (s *Subject) Exam() *Exam { return s.exam }

// SetExam attaches an authored exam, replacing any previous one.
func (s *Subject) SetExam(e *Exam) { s.exam = e }
