package application

import (
	"context"
	"fmt"
	"os"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/grading/internal/domain"
)

func NewGradeReportQueryHandler(repo StudentRepository) app.Query[GradeReportQuery, []GradedStudent] {
	return &gradeReportQueryHandler{repo: repo}
}

type gradeReportQueryHandler struct {
	repo StudentRepository
}

type (
	GradeReportQuery struct{}

	GradedStudent struct {
		Student domain.Student
		Grade   string
	}
)

func (h *gradeReportQueryHandler) H(ctx context.Context, _ GradeReportQuery) ([]GradedStudent, error) {
	students, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get students: %w", err)
	}

	graded := make([]GradedStudent, 0, len(students))
	for _, s := range students {
		graded = append(graded, GradedStudent{Student: s, Grade: s.Grade()})
	}

	return graded, nil
}

func NewWriteReportCommandHandler(repo StudentRepository) app.Command[WriteReportCommand] {
	return &writeReportCommandHandler{repo: repo}
}

type writeReportCommandHandler struct {
	repo StudentRepository
}

// WriteReportCommand writes the grade report of all students to the file at Path.
// An existing file is overwritten.
type WriteReportCommand struct {
	Path string `validate:"required"`
}

func (h *writeReportCommandHandler) H(ctx context.Context, cmd WriteReportCommand) error {
	students, err := h.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("could not get students: %w", err)
	}

	f, err := os.Create(cmd.Path)
	if err != nil {
		return fmt.Errorf("could not create report: %w", err)
	}
	defer f.Close()

	if err := domain.WriteReport(f, students); err != nil {
		return err //nolint:wrapcheck // domain error is descriptive
	}

	return f.Close() //nolint:wrapcheck // report close errors as is
}
