package application_test

import (
	"context"
	"time"

	"github.com/go-arrower/typedrepo/contexts/finance/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

var (
	ctx = context.Background()

	groceries = domain.Transaction{ID: 1, Date: date(5), Amount: 1250, Category: "groceries"}
	rent      = domain.Transaction{ID: 2, Date: date(1), Amount: 85000, Category: "rent"}
	market    = domain.Transaction{ID: 3, Date: date(12), Amount: 3400, Category: "groceries"}
)

func date(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func transactionRepo(transactions ...domain.Transaction) *repository.MemoryQuantityRepository[domain.Transaction, domain.TransactionID] {
	repo := repository.NewMemoryQuantityRepository[domain.Transaction, domain.TransactionID]()

	for _, t := range transactions {
		_ = repo.Insert(ctx, t)
	}

	return repo
}
