package localfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scolarium/core"
	logsvc "scolarium/services/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "rgsc-data-v1.json"), logsvc.NewNopLogger(), nil)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	return s
}

func TestLoadEmptyStoreYieldsDefaults(t *testing.T) {
	s := newTestStore(t)

	doc := s.Load()
	assert.Equal(t, "", doc.CurrentSchoolYear)
	assert.Empty(t, doc.SchoolYears)
	assert.Equal(t, core.DefaultAppData().Settings, doc.Settings)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	doc := core.DefaultAppData()
	doc.Settings.SchoolName = "Lycée Central"
	doc.CurrentSchoolYear = "2024-2025"
	yr := doc.EnsureYear("2024-2025")
	yr.Students = append(yr.Students, core.Student{
		ID:          "s1",
		Matricule:   "M1",
		Name:        "Amadou",
		ClassName:   "6A",
		TotalAmount: 150000,
		CreatedAt:   time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC),
	})
	s.Save(doc)

	got := s.Load()
	assert.Equal(t, doc, got)
}

func TestLoadCorruptFileYieldsDefaults(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	assert.Equal(t, core.DefaultAppData(), got)
}

// A document written before a top-level key existed still loads with that
// key's defaults; but the merge is one level deep only, so a stored settings
// object missing a newer sub-field does NOT regain that sub-field's default.
func TestLoadShallowMerge(t *testing.T) {
	s := newTestStore(t)

	t.Run("missing top-level keys are defaulted", func(t *testing.T) {
		raw := []byte(`{"currentSchoolYear":"2024"}`)
		if err := os.WriteFile(s.path, raw, 0o644); err != nil {
			t.Fatal(err)
		}
		got := s.Load()
		assert.Equal(t, "2024", got.CurrentSchoolYear)
		assert.Equal(t, core.DefaultAppData().Settings, got.Settings)
		assert.Empty(t, got.SchoolYears)
	})

	t.Run("present nested objects replace defaults wholesale", func(t *testing.T) {
		raw := []byte(`{"settings":{"schoolName":"Lycée Central"}}`)
		if err := os.WriteFile(s.path, raw, 0o644); err != nil {
			t.Fatal(err)
		}
		got := s.Load()
		assert.Equal(t, "Lycée Central", got.Settings.SchoolName)
		assert.Equal(t, "", got.Settings.SignatureName, "nested sub-fields must not be deep-merged")
		assert.Equal(t, 0, got.Settings.SchoolYearStartMonth)
	})
}

func TestLoadNormalizesYearRecords(t *testing.T) {
	s := newTestStore(t)
	raw := []byte(`{"currentSchoolYear":"2024","schoolYears":{"2024":{}}}`)
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	yr, ok := got.CurrentYear()
	if !ok {
		t.Fatal("CurrentYear() should resolve")
	}
	assert.NotNil(t, yr.Students)
	assert.NotNil(t, yr.Payments)
}

func TestClearThenLoadYieldsDefaults(t *testing.T) {
	s := newTestStore(t)

	doc := s.Load()
	doc.CurrentSchoolYear = "2024"
	doc.EnsureYear("2024")
	s.Save(doc)

	s.Clear()
	assert.Equal(t, core.DefaultAppData(), s.Load())

	// clearing an already-clear store is fine
	s.Clear()
}

func TestUpdateField(t *testing.T) {
	s := newTestStore(t)

	doc := s.Load()
	doc.CurrentSchoolYear = "2024"
	doc.EnsureYear("2024")
	s.Save(doc)

	got, err := s.UpdateField(core.FieldSchoolName, "Lycée Central")
	if err != nil {
		t.Fatalf("UpdateField() failed: %v", err)
	}
	assert.Equal(t, "Lycée Central", got.Settings.SchoolName)

	// persisted, and everything else untouched
	reloaded := s.Load()
	assert.Equal(t, "Lycée Central", reloaded.Settings.SchoolName)
	assert.Equal(t, "2024", reloaded.CurrentSchoolYear)
	assert.Contains(t, reloaded.SchoolYears, "2024")
}

func TestUpdateFieldRejectsBadInput(t *testing.T) {
	s := newTestStore(t)
	before := s.Load()

	if _, err := s.UpdateField(core.FieldDarkMode, "definitely"); err == nil {
		t.Fatal("UpdateField() should reject a wrong value type")
	}
	if _, err := s.UpdateField(core.Field("nope"), "x"); err == nil {
		t.Fatal("UpdateField() should reject an unknown field")
	}
	assert.Equal(t, before, s.Load(), "failed updates must not persist anything")
}

// A failed write is logged and alerted at the store boundary; the caller is
// not failed and nothing is rolled back.
func TestSaveFaultIsAlertedNotPropagated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.Mkdir(path, 0o755); err != nil { // a directory where the file should be
		t.Fatal(err)
	}

	var alerts []string
	s, err := NewStore(path, logsvc.NewNopLogger(), func(msg string) { alerts = append(alerts, msg) })
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}

	s.Save(core.DefaultAppData()) // must not panic or error out
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
}
