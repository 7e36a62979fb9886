package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
)

func NewListRecordsQueryHandler(
	patients domain.PatientRepository,
	prescriptions domain.PrescriptionRepository,
) app.Query[ListRecordsQuery, ListRecordsResponse] {
	return &listRecordsQueryHandler{
		patients:      patients,
		prescriptions: prescriptions,
	}
}

type listRecordsQueryHandler struct {
	patients      domain.PatientRepository
	prescriptions domain.PrescriptionRepository
}

type (
	ListRecordsQuery struct{}

	ListRecordsResponse struct {
		// Patients in the order they were registered.
		Patients []domain.Patient
		// Prescriptions of each patient, the latest first.
		// Patients without a prescription have no entry.
		Prescriptions map[domain.PatientID][]domain.Prescription
	}
)

func (h *listRecordsQueryHandler) H(ctx context.Context, _ ListRecordsQuery) (ListRecordsResponse, error) {
	patients, err := h.patients.GetAll(ctx)
	if err != nil {
		return ListRecordsResponse{}, fmt.Errorf("could not get patients: %w", err)
	}

	byPatient := make(map[domain.PatientID][]domain.Prescription, len(patients))

	for _, patient := range patients {
		prescriptions, err := h.prescriptions.FindAll(ctx, func(p domain.Prescription) bool {
			return p.PatientID == patient.ID
		})
		if err != nil {
			return ListRecordsResponse{}, fmt.Errorf("could not get prescriptions: %w", err)
		}

		if len(prescriptions) > 0 {
			byPatient[patient.ID] = domain.LatestFirst(prescriptions)
		}
	}

	return ListRecordsResponse{
		Patients:      patients,
		Prescriptions: byPatient,
	}, nil
}
