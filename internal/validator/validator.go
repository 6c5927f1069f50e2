package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stemsi/exstem-cli/internal/model"
)

var (
	// validate is the singleton validator instance.
	validate *govalidator.Validate
	// trans is the singleton English translator for validation errors.
	trans ut.Translator

	setupOnce sync.Once
)

// Setup builds the validator with English translations and the question rules.
// It is safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v := govalidator.New(govalidator.WithRequiredStructEnabled())

		// Use the label tag for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("label")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		// Register English translations.
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerQuestionRules(v)
		validate = v
	})
}

// registerQuestionRules adds the cross-field checks of a QuestionDraft that
// cannot be expressed with tags alone.
func registerQuestionRules(v *govalidator.Validate) {
	v.RegisterStructValidation(func(sl govalidator.StructLevel) {
		d := sl.Current().Interface().(model.QuestionDraft)
		switch d.Type {
		case model.QuestionTypeTrueFalse:
			if d.RightAnswer > 2 {
				sl.ReportError(d.RightAnswer, "right answer", "RightAnswer", "answer_id", "")
			}
		case model.QuestionTypeMultipleChoice:
			if len(d.Answers) < model.MinChoices {
				sl.ReportError(d.Answers, "answers", "Answers", "choices", "")
				return
			}
			if d.RightAnswer > len(d.Answers) {
				sl.ReportError(d.RightAnswer, "right answer", "RightAnswer", "answer_id", "")
			}
		}
	}, model.QuestionDraft{})

	addTranslation(v, "answer_id", "{0} must reference one of the answers")
	addTranslation(v, "choices", "{0} must contain between 2 and 4 items")
}

func addTranslation(v *govalidator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, trans, func(t ut.Translator) error {
		return t.Add(tag, text, true)
	}, func(t ut.Translator, fe govalidator.FieldError) string {
		msg, err := t.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
}

// TranslateErrors takes a validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	Setup()
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Struct validates dst and returns nil on success or a translated field error
// map on failure.
func Struct(dst interface{}) map[string]string {
	Setup()
	if err := validate.Struct(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Summary joins a field error map into a single line, ordered by field name.
func Summary(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return strings.Join(parts, "; ")
}
