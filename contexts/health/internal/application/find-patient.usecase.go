package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
)

func NewFindPatientQueryHandler(
	patients domain.PatientRepository,
	prescriptions domain.PrescriptionRepository,
) app.Query[FindPatientQuery, PatientRecord] {
	return &findPatientQueryHandler{
		patients:      patients,
		prescriptions: prescriptions,
	}
}

type findPatientQueryHandler struct {
	patients      domain.PatientRepository
	prescriptions domain.PrescriptionRepository
}

type (
	FindPatientQuery struct {
		Name string `validate:"required"`
	}

	// PatientRecord is a patient with all prescriptions, the latest first.
	PatientRecord struct {
		Patient       domain.Patient
		Prescriptions []domain.Prescription
	}
)

func (h *findPatientQueryHandler) H(ctx context.Context, query FindPatientQuery) (PatientRecord, error) {
	patient, err := h.patients.FindByName(ctx, query.Name)
	if err != nil {
		return PatientRecord{}, err //nolint:wrapcheck // the repository names the patient already
	}

	prescriptions, err := h.prescriptions.FindAll(ctx, func(p domain.Prescription) bool {
		return p.PatientID == patient.ID
	})
	if err != nil {
		return PatientRecord{}, fmt.Errorf("could not get prescriptions: %w", err)
	}

	return PatientRecord{
		Patient:       patient,
		Prescriptions: domain.LatestFirst(prescriptions),
	}, nil
}
