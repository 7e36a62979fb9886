package domain

import "github.com/go-arrower/typedrepo/repository"

type Repository = repository.QuantityRepository[Transaction, TransactionID]
