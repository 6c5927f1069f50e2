package service

import (
	"errors"
	"fmt"

	"github.com/stemsi/exstem-cli/internal/model"
	"github.com/stemsi/exstem-cli/internal/validator"
)

var ErrInvalidQuestion = errors.New("invalid question")

// QuestionService handles question business logic.
type QuestionService struct{}

// NewQuestionService creates a new QuestionService.
func NewQuestionService() *QuestionService {
	return &QuestionService{}
}

// Create validates an authored draft and builds the matching question variant.
func (s *QuestionService) Create(draft model.QuestionDraft) (model.Question, error) {
	if errs := validator.Struct(draft); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuestion, validator.Summary(errs))
	}
	return draft.Build()
}
