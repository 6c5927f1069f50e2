package service

import (
	"context"
	"errors"
	"time"

	"github.com/stemsi/exstem-cli/internal/model"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errNoMoreAnswers = errors.New("no more scripted answers")

// scriptedCandidate answers questions from a fixed list and records what it
// was shown. Each answer advances the clock by perAnswer.
type scriptedCandidate struct {
	answers   []int
	clock     *fakeClock
	perAnswer time.Duration

	presented []model.Question
	reports   []string
}

func (c *scriptedCandidate) Present(q model.Question) {
	c.presented = append(c.presented, q)
}

func (c *scriptedCandidate) Answer(_ context.Context, q model.Question) (int, error) {
	if len(c.answers) == 0 {
		return 0, errNoMoreAnswers
	}
	id := c.answers[0]
	c.answers = c.answers[1:]
	if !q.ValidateAnswer(id) {
		panic("scripted answer is not valid for the question")
	}
	if c.clock != nil {
		c.clock.Advance(c.perAnswer)
	}
	return id, nil
}

func (c *scriptedCandidate) Report(msg string) {
	c.reports = append(c.reports, msg)
}

func buildExam(examType model.ExamType, duration time.Duration, questions ...model.Question) *model.Exam {
	b := model.NewExamBuilder(examType, duration, len(questions))
	for _, q := range questions {
		_ = b.AddQuestion(q)
	}
	exam, _ := b.Build()
	return exam
}

// scriptedPrompter replays operator input for authoring.
type scriptedPrompter struct {
	ints    []int
	strings []string
	choices []int
	reports []string
	prompts []string
}

func (p *scriptedPrompter) ReadInt(_ context.Context, prompt string, valid func(int) bool) (int, error) {
	p.prompts = append(p.prompts, prompt)
	for len(p.ints) > 0 {
		n := p.ints[0]
		p.ints = p.ints[1:]
		if valid == nil || valid(n) {
			return n, nil
		}
	}
	return 0, errNoMoreAnswers
}

func (p *scriptedPrompter) ReadString(_ context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.strings) == 0 {
		return "", errNoMoreAnswers
	}
	s := p.strings[0]
	p.strings = p.strings[1:]
	return s, nil
}

func (p *scriptedPrompter) ReadChoice(_ context.Context, prompt string, options []string) (int, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.choices) == 0 {
		return 0, errNoMoreAnswers
	}
	idx := p.choices[0]
	p.choices = p.choices[1:]
	if idx < 0 || idx >= len(options) {
		panic("scripted choice out of range")
	}
	return idx, nil
}

func (p *scriptedPrompter) Report(msg string) {
	p.reports = append(p.reports, msg)
}
