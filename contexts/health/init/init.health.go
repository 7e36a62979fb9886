package init

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-arrower/typedrepo"
	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/cmd"
	"github.com/go-arrower/typedrepo/contexts/health/internal/application"
	"github.com/go-arrower/typedrepo/contexts/health/internal/domain"
	"github.com/go-arrower/typedrepo/contexts/health/internal/interfaces/repository"
	repo "github.com/go-arrower/typedrepo/repository"
)

const contextName = "health"

func NewHealthContext(di *typedrepo.Container) (*HealthContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise %s context: %w", contextName, err)
	}

	logger := di.Logger.With(slog.String("context", contextName))

	patients := repository.NewPatientMemoryRepository(repo.WithLogger(logger))
	prescriptions := repository.NewPrescriptionMemoryRepository(repo.WithLogger(logger))

	return &HealthContext{
		registerPatient: app.NewInstrumentedCommand(logger, di.Validate,
			application.NewRegisterPatientCommandHandler(patients)),
		issuePrescription: app.NewInstrumentedCommand(logger, di.Validate,
			application.NewIssuePrescriptionCommandHandler(patients, prescriptions)),
		findPatient: app.NewInstrumentedQuery(logger, di.Validate,
			application.NewFindPatientQueryHandler(patients, prescriptions)),
		listRecords: app.NewInstrumentedQuery(logger, di.Validate,
			application.NewListRecordsQueryHandler(patients, prescriptions)),
	}, nil
}

type HealthContext struct {
	registerPatient   app.Command[application.RegisterPatientCommand]
	issuePrescription app.Command[application.IssuePrescriptionCommand]
	findPatient       app.Query[application.FindPatientQuery, application.PatientRecord]
	listRecords       app.Query[application.ListRecordsQuery, application.ListRecordsResponse]
}

// Run registers patients, issues prescriptions, and prints the health records.
// Expected failures are printed and do not stop the run.
func (c *HealthContext) Run(ctx context.Context, w io.Writer) error {
	p := cmd.NewPrinter(w)
	p.Section("Health records")

	for _, patient := range seedPatients() {
		if err := c.registerPatient.H(ctx, application.RegisterPatientCommand{Patient: patient}); err != nil {
			return fmt.Errorf("could not seed %s: %w", contextName, err)
		}
	}

	for _, prescription := range seedPrescriptions() {
		if err := c.issuePrescription.H(ctx, application.IssuePrescriptionCommand{Prescription: prescription}); err != nil {
			return fmt.Errorf("could not seed %s: %w", contextName, err)
		}
	}

	records, err := c.listRecords.H(ctx, application.ListRecordsQuery{})
	if err != nil {
		return fmt.Errorf("could not list records: %w", err)
	}

	for _, patient := range records.Patients {
		p.Line("%s", patient)

		prescriptions, ok := records.Prescriptions[patient.ID]
		if !ok {
			p.Line("  no prescriptions")
			continue
		}

		for _, prescription := range prescriptions {
			p.Line("  %s", prescription)
		}
	}

	record, err := c.findPatient.H(ctx, application.FindPatientQuery{Name: "kofi mensah"})
	if err != nil {
		p.Fail(err)
	} else {
		p.OK("found %s with %d prescription(s)", record.Patient.Name, len(record.Prescriptions))
	}

	p.Line("looking up a patient who is not registered:")
	_, err = c.findPatient.H(ctx, application.FindPatientQuery{Name: "Esi Asante"})
	report(p, err, "found Esi Asante")

	p.Line("registering a patient with an existing id:")
	err = c.registerPatient.H(ctx, application.RegisterPatientCommand{
		Patient: domain.Patient{ID: 1, Name: "Esi Asante", Age: 27, Gender: domain.Female},
	})
	report(p, err, "registered Esi Asante")

	p.Line("issuing a prescription for an unknown patient:")
	err = c.issuePrescription.H(ctx, application.IssuePrescriptionCommand{
		Prescription: domain.Prescription{ID: 10, PatientID: 42, MedicationName: "Paracetamol", DateIssued: date(2024, 5, 2)},
	})
	report(p, err, "issued Paracetamol")

	p.Line("registering a patient without a name:")
	err = c.registerPatient.H(ctx, application.RegisterPatientCommand{
		Patient: domain.Patient{ID: 4, Age: 30, Gender: domain.Male},
	})
	report(p, err, "registered patient 4")

	return nil
}

func report(p *cmd.Printer, err error, format string, args ...any) {
	if err != nil {
		p.Fail(err)
		return
	}

	p.OK(format, args...)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedPatients() []domain.Patient {
	return []domain.Patient{
		{ID: 1, Name: "Ama Owusu", Age: 34, Gender: domain.Female},
		{ID: 2, Name: "Kofi Mensah", Age: 58, Gender: domain.Male},
		{ID: 3, Name: "Yaw Boateng", Age: 12, Gender: domain.Male},
	}
}

func seedPrescriptions() []domain.Prescription {
	return []domain.Prescription{
		{ID: 1, PatientID: 1, MedicationName: "Amoxicillin", Dosage: "500mg", DateIssued: date(2024, 1, 10)},
		{ID: 2, PatientID: 1, MedicationName: "Ibuprofen", Dosage: "200mg", DateIssued: date(2024, 3, 5)},
		{ID: 3, PatientID: 2, MedicationName: "Metformin", Dosage: "850mg", DateIssued: date(2024, 2, 1)},
		{ID: 4, PatientID: 2, MedicationName: "Lisinopril", Dosage: "10mg", DateIssued: date(2024, 2, 1)},
	}
}
