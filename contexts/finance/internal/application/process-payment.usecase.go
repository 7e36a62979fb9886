package application

import (
	"context"
	"fmt"
	"time"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/finance/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

func NewProcessPaymentRequestHandler(repo domain.Repository) app.Request[ProcessPaymentRequest, ProcessPaymentResponse] {
	return &processPaymentRequestHandler{repo: repo}
}

type processPaymentRequestHandler struct {
	repo domain.Repository
}

type (
	// ProcessPaymentRequest pays Amount with Method and records it as transaction ID.
	ProcessPaymentRequest struct {
		ID       domain.TransactionID `validate:"gte=0"`
		Date     time.Time
		Amount   int
		Category string               `validate:"required"`
		Method   domain.PaymentMethod `validate:"required"`
	}

	ProcessPaymentResponse struct {
		Receipt domain.Receipt
	}
)

func (h *processPaymentRequestHandler) H(ctx context.Context, req ProcessPaymentRequest) (ProcessPaymentResponse, error) {
	// check before paying, so nothing is paid that cannot be recorded
	if req.ID < 0 {
		return ProcessPaymentResponse{}, fmt.Errorf("could not process payment: %w: negative id %d", repository.ErrInvalidValue, req.ID)
	}

	exists, err := h.repo.Exists(ctx, req.ID)
	if err != nil {
		return ProcessPaymentResponse{}, fmt.Errorf("could not process payment: %w", err)
	}

	if exists {
		return ProcessPaymentResponse{}, fmt.Errorf("could not process payment: %w: id %d", repository.ErrAlreadyExists, req.ID)
	}

	receipt, err := req.Method.Pay(req.Amount)
	if err != nil {
		return ProcessPaymentResponse{}, fmt.Errorf("could not process payment: %w", err)
	}

	err = h.repo.Insert(ctx, domain.Transaction{
		ID:        req.ID,
		Date:      req.Date,
		Amount:    receipt.Amount,
		Category:  req.Category,
		Reference: receipt.Reference,
	})
	if err != nil {
		return ProcessPaymentResponse{}, fmt.Errorf("could not record payment %s: %w", receipt.Reference, err)
	}

	return ProcessPaymentResponse{Receipt: receipt}, nil
}
