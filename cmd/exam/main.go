package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-cli/internal/config"
	"github.com/stemsi/exstem-cli/internal/console"
	"github.com/stemsi/exstem-cli/internal/logger"
	"github.com/stemsi/exstem-cli/internal/model"
	"github.com/stemsi/exstem-cli/internal/service"
	"github.com/stemsi/exstem-cli/internal/validator"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx := context.Background()

	// ─── Console ───────────────────────────────────────────────────────
	// Piped input is echoed so the transcript shows every answer.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	con := console.New(os.Stdin, os.Stdout, log, console.Options{
		Echo:    !interactive,
		NoColor: cfg.NoColor,
	})

	// ─── Initialize Services ──────────────────────────────────────────
	questionService := service.NewQuestionService()
	subjectService := service.NewSubjectService(cfg, questionService, log)
	sessionService := service.NewExamSessionService(nil, log)

	if err := run(ctx, cfg, con, subjectService, sessionService); err != nil {
		if errors.Is(err, io.EOF) {
			log.Info().Msg("Input closed")
			return
		}
		log.Error().Err(err).Msg("Session ended")
	}
}

func run(
	ctx context.Context,
	cfg *config.Config,
	con *console.Console,
	subjectService *service.SubjectService,
	sessionService *service.ExamSessionService,
) error {
	subject := model.NewSubject(cfg.SubjectName)

	exam, err := subjectService.BuildExam(ctx, subject, con)
	if err != nil {
		return fmt.Errorf("build exam: %w", err)
	}

	start, err := con.Confirm(ctx, "\nStart Exam? (y/n): ")
	if err != nil {
		return err
	}
	if !start {
		return nil
	}

	if exam.Type == model.ExamTypeFinal && exam.Duration > 0 {
		con.Report(fmt.Sprintf("You have %s. Good luck!", exam.Duration.Round(time.Second)))
	}

	result, err := sessionService.Take(ctx, exam, con)
	if err != nil {
		return fmt.Errorf("take exam: %w", err)
	}
	con.ShowResult(result)
	return nil
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
