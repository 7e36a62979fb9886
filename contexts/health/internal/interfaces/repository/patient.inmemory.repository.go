// Package repository contains the repositories of the health records.
package repository

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

func NewPatientMemoryRepository(opts ...repository.Option) *PatientMemoryRepository {
	return &PatientMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[domain.Patient, domain.PatientID](opts...),
		fold:             cases.Fold(),
	}
}

// PatientMemoryRepository extends the generic repository with a lookup by name.
type PatientMemoryRepository struct {
	*repository.MemoryRepository[domain.Patient, domain.PatientID]

	fold cases.Caser
}

var _ domain.PatientRepository = (*PatientMemoryRepository)(nil)

func (repo *PatientMemoryRepository) FindByName(ctx context.Context, name string) (domain.Patient, error) {
	folded := repo.fold.String(name)

	p, err := repo.FindBy(ctx, func(p domain.Patient) bool {
		return repo.fold.String(p.Name) == folded
	})
	if err != nil {
		return domain.Patient{}, fmt.Errorf("could not find patient %q: %w", name, err)
	}

	return p, nil
}

func NewPrescriptionMemoryRepository(opts ...repository.Option) *repository.MemoryRepository[domain.Prescription, domain.PrescriptionID] {
	return repository.NewMemoryRepository[domain.Prescription, domain.PrescriptionID](opts...)
}
