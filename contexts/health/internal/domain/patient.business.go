// Package domain contains the patients and prescriptions of the health records.
package domain

import (
	"fmt"
	"slices"
	"time"
)

type (
	PatientID      int
	PrescriptionID int
)

type Gender string

const (
	Female  Gender = "female"
	Male    Gender = "male"
	Diverse Gender = "diverse"
)

type Patient struct {
	ID     PatientID
	Name   string `validate:"required"`
	Age    int    `validate:"gte=0,lte=130"`
	Gender Gender `validate:"oneof=female male diverse"`
}

func (p Patient) Identity() PatientID { return p.ID }

func (p Patient) String() string {
	return fmt.Sprintf("[%d] %s, %d, %s", p.ID, p.Name, p.Age, p.Gender)
}

type Prescription struct {
	ID             PrescriptionID
	PatientID      PatientID `validate:"gte=0"`
	MedicationName string    `validate:"required"`
	Dosage         string
	DateIssued     time.Time `validate:"required"`
}

func (p Prescription) Identity() PrescriptionID { return p.ID }

func (p Prescription) String() string {
	s := fmt.Sprintf("[%d] %s", p.ID, p.MedicationName)
	if p.Dosage != "" {
		s += " " + p.Dosage
	}

	return s + ", issued " + p.DateIssued.Format(time.DateOnly)
}

// LatestFirst sorts prescriptions by the date they were issued, the latest first.
// Prescriptions issued on the same date keep their order.
func LatestFirst(prescriptions []Prescription) []Prescription {
	sorted := slices.Clone(prescriptions)

	slices.SortStableFunc(sorted, func(a, b Prescription) int {
		return b.DateIssued.Compare(a.DateIssued)
	})

	return sorted
}
