package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/grading/internal/domain"
)

func NewImportStudentsRequestHandler(repo StudentRepository) app.Request[ImportStudentsRequest, ImportStudentsResponse] {
	return &importStudentsRequestHandler{repo: repo}
}

type importStudentsRequestHandler struct {
	repo StudentRepository
}

type (
	// ImportStudentsRequest holds lines in the format "id, full name, score".
	ImportStudentsRequest struct {
		Input string `validate:"required"`
	}
	ImportStudentsResponse struct {
		Imported int
		// Rejected are the lines that could not be parsed
		// and the students whose id was taken already.
		Rejected []error
	}
)

func (h *importStudentsRequestHandler) H(ctx context.Context, req ImportStudentsRequest) (ImportStudentsResponse, error) {
	students, rejected, err := domain.ParseStudents(strings.NewReader(req.Input))
	if err != nil {
		return ImportStudentsResponse{}, err
	}

	res := ImportStudentsResponse{Rejected: rejected}

	for _, s := range students {
		if err := h.repo.Insert(ctx, s); err != nil {
			res.Rejected = append(res.Rejected, fmt.Errorf("could not import %s: %w", s.FullName, err))
			continue
		}

		res.Imported++
	}

	return res, nil
}
