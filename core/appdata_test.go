package core

import (
	"testing"
	"time"
)

func TestYearKeyFor(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		startMonth int
		want       string
	}{
		{name: "after start month", date: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), startMonth: 9, want: "2024-2025"},
		{name: "on start month", date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), startMonth: 9, want: "2024-2025"},
		{name: "before start month", date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), startMonth: 9, want: "2024-2025"},
		{name: "january start", date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), startMonth: 1, want: "2025-2026"},
		{name: "invalid month falls back to september", date: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), startMonth: 13, want: "2024-2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearKeyFor(tt.date, tt.startMonth); got != tt.want {
				t.Errorf("YearKeyFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppDataCurrentYear(t *testing.T) {
	doc := DefaultAppData()
	if _, ok := doc.CurrentYear(); ok {
		t.Error("CurrentYear() should not resolve on a blank document")
	}

	doc.CurrentSchoolYear = "2024-2025"
	if _, ok := doc.CurrentYear(); ok {
		t.Error("CurrentYear() should not resolve a missing year record")
	}

	doc.EnsureYear("2024-2025")
	yr, ok := doc.CurrentYear()
	if !ok {
		t.Fatal("CurrentYear() should resolve after EnsureYear")
	}
	if yr.Students == nil || yr.Payments == nil {
		t.Error("EnsureYear() must initialize empty lists")
	}
}

func TestAppDataEnsureYearKeepsExisting(t *testing.T) {
	doc := DefaultAppData()
	yr := doc.EnsureYear("2024")
	yr.Students = append(yr.Students, Student{ID: "s1"})

	again := doc.EnsureYear("2024")
	if len(again.Students) != 1 {
		t.Errorf("EnsureYear() replaced an existing record; got %d students", len(again.Students))
	}
}

func TestAppDataClone(t *testing.T) {
	doc := DefaultAppData()
	yr := doc.EnsureYear("2024")
	yr.Students = append(yr.Students, Student{ID: "s1", AmountPaid: 10})

	cp := doc.Clone()
	cp.SchoolYears["2024"].Students[0].AmountPaid = 99
	cp.EnsureYear("2025")

	if got := doc.SchoolYears["2024"].Students[0].AmountPaid; got != 10 {
		t.Errorf("Clone() shares student storage; AmountPaid = %v", got)
	}
	if _, ok := doc.SchoolYears["2025"]; ok {
		t.Error("Clone() shares the year map")
	}
}

func TestAppDataNormalize(t *testing.T) {
	doc := AppData{SchoolYears: map[string]*SchoolYear{"2024": nil, "2025": {}}}
	doc.Normalize()

	for _, key := range []string{"2024", "2025"} {
		yr := doc.SchoolYears[key]
		if yr == nil || yr.Students == nil || yr.Payments == nil {
			t.Errorf("Normalize() left %s with nil containers", key)
		}
	}
}

func TestStudentBalance(t *testing.T) {
	s := Student{TotalAmount: 150000, AmountPaid: 50000}
	if got := s.Balance(); got != 100000 {
		t.Errorf("Balance() = %v, want 100000", got)
	}
}

func TestPaymentTypeValid(t *testing.T) {
	for _, pt := range PaymentTypes {
		if !pt.Valid() {
			t.Errorf("%s should be valid", pt)
		}
	}
	if PaymentType("Cheque").Valid() {
		t.Error("unknown payment type should not be valid")
	}
}
