package core

import (
	"fmt"
	"time"
)

// Payment types
const (
	PaymentCash         PaymentType = "Cash"
	PaymentMobileMoney  PaymentType = "MobileMoney"
	PaymentBankTransfer PaymentType = "BankTransfer"
)

var PaymentTypes = []PaymentType{PaymentCash, PaymentMobileMoney, PaymentBankTransfer}

type PaymentType string

func (t PaymentType) Valid() bool {
	for _, pt := range PaymentTypes {
		if t == pt {
			return true
		}
	}
	return false
}

type (
	// Settings holds the institution metadata. All fields are optional;
	// defaults are back-filled by DefaultAppData.
	Settings struct {
		SchoolName           string `json:"schoolName"`
		SchoolPhone          string `json:"schoolPhone"`
		SchoolAddress        string `json:"schoolAddress"`
		SchoolLogo           string `json:"schoolLogo"`
		SignatureName        string `json:"signatureName"`
		SignatureTitle       string `json:"signatureTitle"`
		SchoolYearStartMonth int    `json:"schoolYearStartMonth"`
		DarkMode             bool   `json:"darkMode"`
	}

	Student struct {
		ID          string    `json:"id"`
		Matricule   string    `json:"matricule"`
		Name        string    `json:"name"`
		ClassName   string    `json:"className"`
		TotalAmount float64   `json:"totalAmount"`
		AmountPaid  float64   `json:"amountPaid"`
		CreatedAt   time.Time `json:"createdAt"` // UTC
	}

	Payment struct {
		ID        string `json:"id"`
		StudentID string `json:"studentId"`

		// snapshot of the student at payment time; kept even if the
		// student record is later removed
		Matricule string `json:"matricule"`
		Name      string `json:"name"`
		ClassName string `json:"className"`

		Amount float64     `json:"amount"`
		Type   PaymentType `json:"type"`
		Date   time.Time   `json:"date"` // UTC
	}

	// SchoolYear holds one year's students and payments, keyed in
	// AppData.SchoolYears by an arbitrary string label.
	SchoolYear struct {
		Students []Student `json:"students"`
		Payments []Payment `json:"payments"`
	}

	// AppData is the whole persisted document.
	AppData struct {
		Settings          Settings               `json:"settings"`
		CurrentSchoolYear string                 `json:"currentSchoolYear"`
		SchoolYears       map[string]*SchoolYear `json:"schoolYears"`
	}
)

// Balance returns the outstanding "solde" for the student.
func (s Student) Balance() float64 {
	return s.TotalAmount - s.AmountPaid
}

// DefaultAppData returns a freshly-initialized blank document.
func DefaultAppData() AppData {
	return AppData{
		Settings: Settings{
			SchoolName:           "School Name",
			SignatureName:        "The Principal",
			SignatureTitle:       "Principal",
			SchoolYearStartMonth: 9,
		},
		CurrentSchoolYear: "",
		SchoolYears:       map[string]*SchoolYear{},
	}
}

// Normalize back-fills nil containers so callers never have to nil-check.
func (d *AppData) Normalize() {
	if d.SchoolYears == nil {
		d.SchoolYears = map[string]*SchoolYear{}
	}
	for key, yr := range d.SchoolYears {
		if yr == nil {
			yr = &SchoolYear{}
			d.SchoolYears[key] = yr
		}
		if yr.Students == nil {
			yr.Students = []Student{}
		}
		if yr.Payments == nil {
			yr.Payments = []Payment{}
		}
	}
}

// CurrentYear resolves the active school year record, if any.
func (d *AppData) CurrentYear() (*SchoolYear, bool) {
	if d.CurrentSchoolYear == "" {
		return nil, false
	}
	yr, ok := d.SchoolYears[d.CurrentSchoolYear]
	if !ok || yr == nil {
		return nil, false
	}
	return yr, true
}

// EnsureYear returns the school year record for key, creating an empty one if
// it does not exist yet.
func (d *AppData) EnsureYear(key string) *SchoolYear {
	if d.SchoolYears == nil {
		d.SchoolYears = map[string]*SchoolYear{}
	}
	yr, ok := d.SchoolYears[key]
	if !ok || yr == nil {
		yr = &SchoolYear{Students: []Student{}, Payments: []Payment{}}
		d.SchoolYears[key] = yr
	}
	return yr
}

// Clone deep-copies the document so callers can mutate it freely.
func (d AppData) Clone() AppData {
	cp := d
	cp.SchoolYears = make(map[string]*SchoolYear, len(d.SchoolYears))
	for key, yr := range d.SchoolYears {
		if yr == nil {
			cp.SchoolYears[key] = nil
			continue
		}
		yrCp := &SchoolYear{
			Students: make([]Student, len(yr.Students)),
			Payments: make([]Payment, len(yr.Payments)),
		}
		copy(yrCp.Students, yr.Students)
		copy(yrCp.Payments, yr.Payments)
		cp.SchoolYears[key] = yrCp
	}
	return cp
}

// YearKeyFor derives the school year label containing t, given the month the
// school year starts on: YearKeyFor(Oct 2024, 9) == "2024-2025" and
// YearKeyFor(Feb 2025, 9) == "2024-2025".
func YearKeyFor(t time.Time, startMonth int) string {
	if startMonth < 1 || startMonth > 12 {
		startMonth = 9
	}
	year := t.Year()
	if int(t.Month()) < startMonth {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}
