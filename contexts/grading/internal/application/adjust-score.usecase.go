package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/grading/internal/domain"
)

func NewAdjustScoreCommandHandler(repo StudentRepository) app.Command[AdjustScoreCommand] {
	return &adjustScoreCommandHandler{repo: repo}
}

type adjustScoreCommandHandler struct {
	repo StudentRepository
}

// AdjustScoreCommand sets the score of a student, e.g. after a re-sit.
type AdjustScoreCommand struct {
	ID    domain.StudentID `validate:"gte=0"`
	Score int
}

func (h *adjustScoreCommandHandler) H(ctx context.Context, cmd AdjustScoreCommand) error {
	if err := domain.ValidateScore(cmd.Score); err != nil {
		return err
	}

	if err := h.repo.UpdateQuantity(ctx, cmd.ID, cmd.Score); err != nil {
		return fmt.Errorf("could not adjust score: %w", err)
	}

	return nil
}
