package init

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-arrower/typedrepo"
	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/cmd"
	"github.com/go-arrower/typedrepo/contexts/grading/internal/application"
	"github.com/go-arrower/typedrepo/contexts/grading/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

const contextName = "grading"

// sampleStudents is graded if no input file is configured.
// Some lines are invalid on purpose.
const sampleStudents = `1, Kwame Asante, 85
2, abena osei, 72
3, Kojo Antwi, 64
4, Efua Mensah, 51
5, Yaw Boateng, 38
6, Akua Darko
7, Kofi Owusu, 105
2, Ama Serwaa, 90
`

func NewGradingContext(di *typedrepo.Container) (*GradingContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise %s context: %w", contextName, err)
	}

	logger := di.Logger.With(slog.String("context", contextName))

	students := repository.NewMemoryQuantityRepository[domain.Student, domain.StudentID](repository.WithLogger(logger))

	return &GradingContext{
		conf: di.Config.Grading,
		dir:  di.Config.DataDir,

		importStudents: app.NewInstrumentedRequest(logger, di.Validate, application.NewImportStudentsRequestHandler(students)),
		adjustScore:    app.NewInstrumentedCommand(logger, di.Validate, application.NewAdjustScoreCommandHandler(students)),
		gradeReport:    app.NewInstrumentedQuery(logger, di.Validate, application.NewGradeReportQueryHandler(students)),
		writeReport:    app.NewInstrumentedCommand(logger, di.Validate, application.NewWriteReportCommandHandler(students)),
	}, nil
}

type GradingContext struct {
	conf typedrepo.Grading
	dir  string

	importStudents app.Request[application.ImportStudentsRequest, application.ImportStudentsResponse]
	adjustScore    app.Command[application.AdjustScoreCommand]
	gradeReport    app.Query[application.GradeReportQuery, []application.GradedStudent]
	writeReport    app.Command[application.WriteReportCommand]
}

// Run grades the students of the configured input file, or of a built-in sample, and writes the report file.
// Rejected lines are printed and do not stop the run.
func (c *GradingContext) Run(ctx context.Context, w io.Writer) error {
	p := cmd.NewPrinter(w)
	p.Section("Grading")

	input, source, err := c.input()
	if err != nil {
		return err
	}

	res, err := c.importStudents.H(ctx, application.ImportStudentsRequest{Input: input})
	if err != nil {
		return fmt.Errorf("could not import students: %w", err)
	}

	p.OK("imported %d student(s) from %s", res.Imported, source)

	for _, rejected := range res.Rejected {
		p.Fail(rejected)
	}

	if err := c.printGrades(ctx, p); err != nil {
		return err
	}

	p.Line("adjusting scores after a re-sit:")
	err = c.adjustScore.H(ctx, application.AdjustScoreCommand{ID: 5, Score: 55})
	report(p, err, "score of student 5 is now 55")

	err = c.adjustScore.H(ctx, application.AdjustScoreCommand{ID: 4, Score: 120})
	report(p, err, "score of student 4 is now 120")

	err = c.adjustScore.H(ctx, application.AdjustScoreCommand{ID: 42, Score: 60})
	report(p, err, "score of student 42 is now 60")

	path := c.reportPath()

	if err := c.writeReport.H(ctx, application.WriteReportCommand{Path: path}); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	p.OK("report written to %s", path)

	return nil
}

func (c *GradingContext) input() (string, string, error) {
	if c.conf.Input == "" {
		return sampleStudents, "sample", nil
	}

	b, err := os.ReadFile(c.conf.Input)
	if err != nil {
		return "", "", fmt.Errorf("could not read students: %w", err)
	}

	return string(b), c.conf.Input, nil
}

// reportPath resolves a relative report path against the data dir.
func (c *GradingContext) reportPath() string {
	if filepath.IsAbs(c.conf.Report) {
		return c.conf.Report
	}

	return filepath.Join(c.dir, c.conf.Report)
}

func (c *GradingContext) printGrades(ctx context.Context, p *cmd.Printer) error {
	graded, err := c.gradeReport.H(ctx, application.GradeReportQuery{})
	if err != nil {
		return fmt.Errorf("could not grade students: %w", err)
	}

	for _, g := range graded {
		p.Line("  %-3d %-16s %3d  %s", g.Student.ID, g.Student.FullName, g.Student.Score, g.Grade)
	}

	return nil
}

func report(p *cmd.Printer, err error, format string, args ...any) {
	if err != nil {
		p.Fail(err)
		return
	}

	p.OK(format, args...)
}
