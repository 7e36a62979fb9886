package domain

import (
	"context"

	"github.com/go-arrower/typedrepo/repository"
)

type PatientRepository interface {
	repository.Repository[Patient, PatientID]

	// FindByName returns the first patient with the name, ignoring case.
	FindByName(ctx context.Context, name string) (Patient, error)
}

type PrescriptionRepository = repository.Repository[Prescription, PrescriptionID]
