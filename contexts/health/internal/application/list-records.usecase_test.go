package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/typedrepo/contexts/health/internal/application"
	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
	"github.com/go-arrower/typedrepo/contexts/health/internal/interfaces/repository"
)

func TestListRecordsQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("records", func(t *testing.T) {
		t.Parallel()

		patients, prescriptions := repositories()
		yaw := domain.Patient{ID: 3, Name: "Yaw Boateng", Age: 12, Gender: domain.Male}
		_ = patients.Insert(ctx, yaw)

		handler := application.NewListRecordsQueryHandler(patients, prescriptions)

		res, err := handler.H(ctx, application.ListRecordsQuery{})
		assert.NoError(t, err)
		assert.Equal(t, []domain.Patient{ama, kofi, yaw}, res.Patients)
		assert.Equal(t, map[domain.PatientID][]domain.Prescription{
			ama.ID:  {ibuprofen, amoxicillin},
			kofi.ID: {metformin},
		}, res.Prescriptions)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		handler := application.NewListRecordsQueryHandler(
			repository.NewPatientMemoryRepository(),
			repository.NewPrescriptionMemoryRepository(),
		)

		res, err := handler.H(ctx, application.ListRecordsQuery{})
		assert.NoError(t, err)
		assert.Empty(t, res.Patients)
		assert.Empty(t, res.Prescriptions)
	})
}
