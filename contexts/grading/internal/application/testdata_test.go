package application_test

import (
	"context"

	"github.com/go-arrower/typedrepo/contexts/grading/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

var (
	ctx = context.Background()

	kwame = domain.Student{ID: 1, FullName: "Kwame Asante", Score: 85}
	abena = domain.Student{ID: 2, FullName: "Abena Osei", Score: 47}
)

func studentRepo(students ...domain.Student) *repository.MemoryQuantityRepository[domain.Student, domain.StudentID] {
	repo := repository.NewMemoryQuantityRepository[domain.Student, domain.StudentID]()

	for _, s := range students {
		_ = repo.Insert(ctx, s)
	}

	return repo
}
