package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-cli/internal/model"
)

// Feedback and notices reported to the candidate during a run.
const (
	MsgCorrect = "Correct!"
	MsgTimesUp = "Time's up! No further questions will be presented."
)

var ErrUnknownExamType = errors.New("unknown exam type")

// Clock provides the current time for exam runs.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Candidate is the boundary through which an exam is taken. Answer must only
// return ids for which q.ValidateAnswer is true.
type Candidate interface {
	Present(q model.Question)
	Answer(ctx context.Context, q model.Question) (int, error)
	Report(msg string)
}

// examPolicy holds the per-type hooks of the shared run loop.
type examPolicy interface {
	// admit is checked before each question is presented.
	admit(elapsed, limit time.Duration) bool
	// feedback is called after each question is scored.
	feedback(c Candidate, q model.Question, submitted int)
}

// finalPolicy is time-boxed and silent.
type finalPolicy struct{}

func (finalPolicy) admit(elapsed, limit time.Duration) bool {
	return limit > 0 && elapsed <= limit
}

func (finalPolicy) feedback(Candidate, model.Question, int) {}

// practicalPolicy is untimed and reports the outcome of every question.
type practicalPolicy struct{}

func (practicalPolicy) admit(time.Duration, time.Duration) bool { return true }

func (practicalPolicy) feedback(c Candidate, q model.Question, submitted int) {
	if submitted == q.RightAnswer() {
		c.Report(MsgCorrect)
		return
	}
	c.Report(WrongAnswerMessage(q))
}

// WrongAnswerMessage is the practical-exam feedback for an incorrect answer.
func WrongAnswerMessage(q model.Question) string {
	return fmt.Sprintf("Wrong. Correct answer: %d", q.RightAnswer())
}

func policyFor(t model.ExamType) (examPolicy, error) {
	switch t {
	case model.ExamTypeFinal:
		return finalPolicy{}, nil
	case model.ExamTypePractical:
		return practicalPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExamType, t)
	}
}

// ExamSessionService runs the exam-taking state machine.
type ExamSessionService struct {
	clock Clock
	log   zerolog.Logger
}

// NewExamSessionService creates a new ExamSessionService. A nil clock uses
// the wall clock.
func NewExamSessionService(clock Clock, log zerolog.Logger) *ExamSessionService {
	if clock == nil {
		clock = realClock{}
	}
	return &ExamSessionService{
		clock: clock,
		log:   log.With().Str("component", "exam_session_service").Logger(),
	}
}

// Start moves the exam to IN_PROGRESS and records the start time.
func (s *ExamSessionService) Start(exam *model.Exam) error {
	if _, err := policyFor(exam.Type); err != nil {
		return err
	}
	if err := exam.Start(s.clock.Now()); err != nil {
		return err
	}

	s.log.Info().
		Str("exam_id", exam.ID.String()).
		Str("type", string(exam.Type)).
		Dur("duration", exam.Duration).
		Int("questions", len(exam.Questions())).
		Msg("Exam started")
	return nil
}

// Run presents the questions of a started exam in order and returns the
// result. A Final exam stops before the first question presented after its
// duration has elapsed; answers already given keep their score.
func (s *ExamSessionService) Run(ctx context.Context, exam *model.Exam, c Candidate) (model.ExamResult, error) {
	policy, err := policyFor(exam.Type)
	if err != nil {
		return model.ExamResult{}, err
	}
	if exam.Status() != model.ExamStatusInProgress {
		return model.ExamResult{}, fmt.Errorf("%w: status is %s", model.ErrExamNotInProgress, exam.Status())
	}

	log := s.log.With().Str("exam_id", exam.ID.String()).Logger()
	start := exam.StartedAt()
	total, maxScore := 0, 0

	for i, q := range exam.Questions() {
		elapsed := s.clock.Now().Sub(start)
		if !policy.admit(elapsed, exam.Duration) {
			log.Info().
				Dur("elapsed", elapsed).
				Int("presented", i).
				Msg("Time limit reached")
			c.Report(MsgTimesUp)
			break
		}

		c.Present(q)
		submitted, err := c.Answer(ctx, q)
		if err != nil {
			_ = exam.Complete()
			return model.ExamResult{}, fmt.Errorf("answer question %d: %w", i+1, err)
		}

		maxScore += q.Mark()
		if submitted == q.RightAnswer() {
			total += q.Mark()
		}
		policy.feedback(c, q, submitted)

		log.Debug().
			Int("question", i+1).
			Int("submitted", submitted).
			Bool("correct", submitted == q.RightAnswer()).
			Msg("Question scored")
	}

	result := model.NewExamResult(total, maxScore, s.clock.Now().Sub(start))
	if err := exam.Complete(); err != nil {
		return model.ExamResult{}, err
	}

	log.Info().
		Int("score", result.TotalScore).
		Int("max_score", result.MaxScore).
		Dur("time_taken", result.TimeTaken).
		Msg("Exam completed")
	return result, nil
}

// Take starts the exam and runs it to completion.
func (s *ExamSessionService) Take(ctx context.Context, exam *model.Exam, c Candidate) (model.ExamResult, error) {
	if err := s.Start(exam); err != nil {
		return model.ExamResult{}, fmt.Errorf("start exam: %w", err)
	}
	return s.Run(ctx, exam, c)
}
