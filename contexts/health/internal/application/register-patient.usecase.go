// Package application contains the use cases of the health records.
package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
)

func NewRegisterPatientCommandHandler(patients domain.PatientRepository) app.Command[RegisterPatientCommand] {
	return &registerPatientCommandHandler{patients: patients}
}

type registerPatientCommandHandler struct {
	patients domain.PatientRepository
}

type RegisterPatientCommand struct {
	Patient domain.Patient
}

func (h *registerPatientCommandHandler) H(ctx context.Context, cmd RegisterPatientCommand) error {
	if err := h.patients.Insert(ctx, cmd.Patient); err != nil {
		return fmt.Errorf("could not register patient: %w", err)
	}

	return nil
}
