package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-cli/internal/config"
	"github.com/stemsi/exstem-cli/internal/model"
)

// Prompter is the input surface used while authoring an exam. Every read
// blocks until an acceptable value is supplied.
type Prompter interface {
	ReadInt(ctx context.Context, prompt string, valid func(int) bool) (int, error)
	ReadString(ctx context.Context, prompt string) (string, error)
	// ReadChoice returns the zero-based index of the selected option.
	ReadChoice(ctx context.Context, prompt string, options []string) (int, error)
	Report(msg string)
}

// maxDurationAmount caps the entered duration, in either unit, well below
// the time.Duration overflow.
const maxDurationAmount = 100000

var (
	examTypes     = []model.ExamType{model.ExamTypeFinal, model.ExamTypePractical}
	questionTypes = []model.QuestionType{model.QuestionTypeTrueFalse, model.QuestionTypeMultipleChoice}
)

// SubjectService authors a subject's exam from operator input.
type SubjectService struct {
	questions    *QuestionService
	durationUnit time.Duration
	unitLabel    string
	log          zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(cfg *config.Config, questions *QuestionService, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		questions:    questions,
		durationUnit: cfg.DurationUnit,
		unitLabel:    cfg.UnitLabel(),
		log:          log.With().Str("component", "subject_service").Logger(),
	}
}

// BuildExam asks for the exam settings and each of its questions, then
// attaches the resulting exam to the subject.
func (s *SubjectService) BuildExam(ctx context.Context, subject *model.Subject, p Prompter) (*model.Exam, error) {
	p.Report(fmt.Sprintf("Creating exam for %s", subject.Name))

	idx, err := p.ReadChoice(ctx, "Exam type", labelsOf(examTypes, model.ExamType.Label))
	if err != nil {
		return nil, fmt.Errorf("read exam type: %w", err)
	}
	examType := examTypes[idx]

	amount, err := p.ReadInt(ctx, fmt.Sprintf("Duration (%s): ", s.unitLabel),
		func(n int) bool { return n >= 0 && n <= maxDurationAmount })
	if err != nil {
		return nil, fmt.Errorf("read duration: %w", err)
	}

	count, err := p.ReadInt(ctx, "Number of questions: ", func(n int) bool { return n >= 1 })
	if err != nil {
		return nil, fmt.Errorf("read question count: %w", err)
	}

	builder := model.NewExamBuilder(examType, time.Duration(amount)*s.durationUnit, count)
	for i := 1; i <= count; i++ {
		p.Report(fmt.Sprintf("\nQuestion %d of %d", i, count))

		q, err := s.collectQuestion(ctx, p, examType)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if err := builder.AddQuestion(q); err != nil {
			return nil, err
		}
	}

	exam, err := builder.Build()
	if err != nil {
		return nil, err
	}
	subject.SetExam(exam)

	s.log.Info().
		Str("subject_id", subject.ID.String()).
		Str("exam_id", exam.ID.String()).
		Str("type", string(exam.Type)).
		Int("questions", len(exam.Questions())).
		Int("total_marks", exam.TotalMarks()).
		Msg("Exam built")
	return exam, nil
}

// collectQuestion reads one question. Practical exams only use multiple choice.
func (s *SubjectService) collectQuestion(ctx context.Context, p Prompter, examType model.ExamType) (model.Question, error) {
	draft := model.QuestionDraft{Type: model.QuestionTypeMultipleChoice}

	if examType != model.ExamTypePractical {
		idx, err := p.ReadChoice(ctx, "Question type", labelsOf(questionTypes, model.QuestionType.Label))
		if err != nil {
			return nil, fmt.Errorf("read question type: %w", err)
		}
		draft.Type = questionTypes[idx]
	}

	body, err := s.readBody(ctx, p)
	if err != nil {
		return nil, err
	}
	draft.Body = body

	mark, err := p.ReadInt(ctx,
		fmt.Sprintf("Mark (1-%d): ", model.MaxMark),
		func(n int) bool { return n >= 1 && n <= model.MaxMark })
	if err != nil {
		return nil, fmt.Errorf("read mark: %w", err)
	}
	draft.Mark = mark

	choices := 2
	if draft.Type == model.QuestionTypeMultipleChoice {
		choices, err = p.ReadInt(ctx,
			fmt.Sprintf("Number of answers (%d-%d): ", model.MinChoices, model.MaxChoices),
			func(n int) bool { return n >= model.MinChoices && n <= model.MaxChoices })
		if err != nil {
			return nil, fmt.Errorf("read answer count: %w", err)
		}
		for i := 1; i <= choices; i++ {
			text, err := p.ReadString(ctx, fmt.Sprintf("Answer %d: ", i))
			if err != nil {
				return nil, fmt.Errorf("read answer %d: %w", i, err)
			}
			draft.Answers = append(draft.Answers, text)
		}
	}

	right, err := p.ReadInt(ctx,
		fmt.Sprintf("Right answer (1-%d): ", choices),
		func(n int) bool { return n >= 1 && n <= choices })
	if err != nil {
		return nil, fmt.Errorf("read right answer: %w", err)
	}
	draft.RightAnswer = right

	return s.questions.Create(draft)
}

// readBody prompts for the question text until it fits within MaxBodyLength.
func (s *SubjectService) readBody(ctx context.Context, p Prompter) (string, error) {
	for {
		body, err := p.ReadString(ctx, "Question text: ")
		if err != nil {
			return "", fmt.Errorf("read question text: %w", err)
		}
		if utf8.RuneCountInString(body) <= model.MaxBodyLength {
			return body, nil
		}
		p.Report(fmt.Sprintf("Question text must be at most %d characters.", model.MaxBodyLength))
	}
}

func labelsOf[T any](items []T, label func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = label(it)
	}
	return out
}
