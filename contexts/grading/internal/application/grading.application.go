// Package application contains the use cases of the grading.
package application

import (
	"github.com/go-arrower/typedrepo/contexts/grading/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

type StudentRepository = repository.QuantityRepository[domain.Student, domain.StudentID]
