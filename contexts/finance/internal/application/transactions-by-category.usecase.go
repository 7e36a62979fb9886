package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/finance/internal/domain"
)

func NewTransactionsByCategoryQueryHandler(
	repo domain.Repository,
) app.Query[TransactionsByCategoryQuery, TransactionsByCategoryResponse] {
	return &transactionsByCategoryQueryHandler{repo: repo}
}

type transactionsByCategoryQueryHandler struct {
	repo domain.Repository
}

type (
	TransactionsByCategoryQuery struct {
		Category string `validate:"required"`
	}

	TransactionsByCategoryResponse struct {
		Transactions []domain.Transaction
		Total        int
	}
)

func (h *transactionsByCategoryQueryHandler) H(
	ctx context.Context,
	query TransactionsByCategoryQuery,
) (TransactionsByCategoryResponse, error) {
	transactions, err := h.repo.FindAll(ctx, domain.InCategory(query.Category))
	if err != nil {
		return TransactionsByCategoryResponse{}, fmt.Errorf("could not find transactions: %w", err)
	}

	return TransactionsByCategoryResponse{
		Transactions: transactions,
		Total:        domain.Total(transactions),
	}, nil
}
