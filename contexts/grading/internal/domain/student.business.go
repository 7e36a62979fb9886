// Package domain contains students, their scores, and the rules to grade them.
package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidID    = errors.New("invalid student id")
	ErrInvalidScore = errors.New("invalid score")
)

const (
	MinScore = 0
	MaxScore = 100
)

type StudentID int

// Student is graded by Score, which is kept as the quantity of the student in a repository.
type Student struct {
	ID       StudentID
	FullName string
	Score    int
}

func (s Student) Identity() StudentID  { return s.ID }
func (s Student) CurrentQuantity() int { return s.Score }

func (s Student) WithQuantity(score int) Student {
	s.Score = score

	return s
}

func (s Student) Grade() string {
	return Grade(s.Score)
}

// Grade maps a score to a letter grade.
func Grade(score int) string {
	switch {
	case score >= 80: //nolint:mnd
		return "A"
	case score >= 70: //nolint:mnd
		return "B"
	case score >= 60: //nolint:mnd
		return "C"
	case score >= 50: //nolint:mnd
		return "D"
	default:
		return "F"
	}
}

// ValidateScore returns ErrInvalidScore if score is outside MinScore..MaxScore.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidScore, score, MinScore, MaxScore)
	}

	return nil
}

// ParseStudent parses a line in the format "id, full name, score".
// The name is normalised to title case; commas inside the name are kept.
func ParseStudent(line string) (Student, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 { //nolint:mnd // id, name, score
		return Student{}, fmt.Errorf("%w: expected id, name, and score in %q", ErrMissingField, line)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || id < 0 {
		return Student{}, fmt.Errorf("%w: %q", ErrInvalidID, strings.TrimSpace(fields[0]))
	}

	name := strings.Join(strings.Fields(strings.Join(fields[1:len(fields)-1], ",")), " ")
	if name == "" {
		return Student{}, fmt.Errorf("%w: name is empty in %q", ErrMissingField, line)
	}

	rawScore := strings.TrimSpace(fields[len(fields)-1])

	score, err := strconv.Atoi(rawScore)
	if err != nil {
		return Student{}, fmt.Errorf("%w: %q is not a number", ErrInvalidScore, rawScore)
	}

	if err := ValidateScore(score); err != nil {
		return Student{}, err
	}

	return Student{
		ID:       StudentID(id),
		FullName: cases.Title(language.English).String(name),
		Score:    score,
	}, nil
}

// LineError is the error of one line of the input to ParseStudents.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// ParseStudents parses every non-empty line of r with ParseStudent.
// Lines that cannot be parsed are reported as LineError and skipped.
func ParseStudents(r io.Reader) ([]Student, []error, error) {
	var (
		students []Student
		rejected []error
	)

	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		student, err := ParseStudent(text)
		if err != nil {
			rejected = append(rejected, LineError{Line: line, Err: err})
			continue
		}

		students = append(students, student)
	}

	if err := scanner.Err(); err != nil {
		return students, rejected, fmt.Errorf("could not read students: %w", err)
	}

	return students, rejected, nil
}
