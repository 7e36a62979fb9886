package application_test

import (
	"context"
	"time"

	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
	"github.com/go-arrower/typedrepo/contexts/health/internal/interfaces/repository"
	repo "github.com/go-arrower/typedrepo/repository"
)

var (
	ctx = context.Background()

	ama  = domain.Patient{ID: 1, Name: "Ama Owusu", Age: 34, Gender: domain.Female}
	kofi = domain.Patient{ID: 2, Name: "Kofi Mensah", Age: 58, Gender: domain.Male}

	amoxicillin = domain.Prescription{ID: 1, PatientID: ama.ID, MedicationName: "Amoxicillin", Dosage: "500mg", DateIssued: date(2024, 1, 10)}
	ibuprofen   = domain.Prescription{ID: 2, PatientID: ama.ID, MedicationName: "Ibuprofen", DateIssued: date(2024, 3, 5)}
	metformin   = domain.Prescription{ID: 3, PatientID: kofi.ID, MedicationName: "Metformin", DateIssued: date(2024, 2, 1)}
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func repositories() (*repository.PatientMemoryRepository, *repo.MemoryRepository[domain.Prescription, domain.PrescriptionID]) {
	patients := repository.NewPatientMemoryRepository()
	_ = patients.Insert(ctx, ama)
	_ = patients.Insert(ctx, kofi)

	prescriptions := repository.NewPrescriptionMemoryRepository()
	_ = prescriptions.Insert(ctx, amoxicillin)
	_ = prescriptions.Insert(ctx, ibuprofen)
	_ = prescriptions.Insert(ctx, metformin)

	return patients, prescriptions
}
