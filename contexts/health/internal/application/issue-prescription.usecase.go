package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
)

var ErrUnknownPatient = errors.New("unknown patient")

func NewIssuePrescriptionCommandHandler(
	patients domain.PatientRepository,
	prescriptions domain.PrescriptionRepository,
) app.Command[IssuePrescriptionCommand] {
	return &issuePrescriptionCommandHandler{
		patients:      patients,
		prescriptions: prescriptions,
	}
}

type issuePrescriptionCommandHandler struct {
	patients      domain.PatientRepository
	prescriptions domain.PrescriptionRepository
}

type IssuePrescriptionCommand struct {
	Prescription domain.Prescription
}

func (h *issuePrescriptionCommandHandler) H(ctx context.Context, cmd IssuePrescriptionCommand) error {
	exists, err := h.patients.Exists(ctx, cmd.Prescription.PatientID)
	if err != nil {
		return fmt.Errorf("could not check patient: %w", err)
	}

	if !exists {
		return fmt.Errorf("%w: id %d", ErrUnknownPatient, cmd.Prescription.PatientID)
	}

	if err := h.prescriptions.Insert(ctx, cmd.Prescription); err != nil {
		return fmt.Errorf("could not issue prescription: %w", err)
	}

	return nil
}
