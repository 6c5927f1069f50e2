package model

// Answer is a labeled choice belonging to a single question.
// IDs are assigned sequentially from 1 within the owning question.
type Answer struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// NewAnswer creates an Answer. Callers guarantee id >= 1 and a non-empty text.
func NewAnswer(id int, text string) Answer {
	return Answer{ID: id, Text: text}
}
