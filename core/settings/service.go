package settings

import (
	"errors"
	"sort"
	"time"

	"scolarium/core"
	"scolarium/storage"
)

var ErrYearKeyRequired = errors.New("school year key is required")

type Service struct {
	store storage.Store
	log   core.Logger
}

func NewService(store storage.Store, log core.Logger) *Service {
	return &Service{store: store, log: log}
}

func (svc *Service) Get() core.Settings {
	return svc.store.Load().Settings
}

// Update sets one document field through the store's field-update primitive
// and returns the resulting full document.
func (svc *Service) Update(field core.Field, value interface{}) (core.AppData, error) {
	return svc.store.UpdateField(field, value)
}

// SetCurrentYear selects the active school year, creating its record if it
// does not exist yet.
func (svc *Service) SetCurrentYear(key string) (core.AppData, error) {
	key = core.CleanString(key)
	if key == "" {
		return core.AppData{}, core.NewValidationError(ErrYearKeyRequired)
	}
	doc := svc.store.Load()
	doc.EnsureYear(key)
	doc.CurrentSchoolYear = key
	svc.store.Save(doc)
	return doc, nil
}

// CurrentYear returns the active school year key; empty when unset.
func (svc *Service) CurrentYear() string {
	return svc.store.Load().CurrentSchoolYear
}

// Years returns the known school year keys, sorted.
func (svc *Service) Years() []string {
	doc := svc.store.Load()
	keys := make([]string, 0, len(doc.SchoolYears))
	for key := range doc.SchoolYears {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DefaultYearKey derives the year label containing t from the configured
// school-year start month.
func (svc *Service) DefaultYearKey(t time.Time) string {
	return core.YearKeyFor(t, svc.Get().SchoolYearStartMonth)
}

// ClearAll wipes the persisted document. The caller is responsible for
// confirming first.
func (svc *Service) ClearAll() {
	svc.store.Clear()
}
