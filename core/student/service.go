package student

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"scolarium/core"
	"scolarium/storage"
)

var (
	// errors
	ErrNotFound        = errors.New("student not found")
	ErrMatriculeExists = errors.New("a student with this matricule already exists")
	ErrNoSchoolYear    = errors.New("no active school year is set")

	nowFunc = time.Now // mockable
)

type Service struct {
	store storage.Store
	log   core.Logger
}

func NewService(store storage.Store, log core.Logger) *Service {
	return &Service{store: store, log: log}
}

// Create registers a student in the current school year with a zero paid
// amount. The matricule must not already be in use in that year
// (case-sensitive exact match).
func (svc *Service) Create(ns NewStudent) (core.Student, error) {
	ns.Matricule = core.CleanString(ns.Matricule)
	ns.Name = core.CleanString(ns.Name)
	ns.ClassName = core.CleanString(ns.ClassName)
	if err := core.Validate.Struct(ns); err != nil {
		return core.Student{}, core.TranslateValidationError(err)
	}

	doc := svc.store.Load()
	yr, ok := doc.CurrentYear()
	if !ok {
		return core.Student{}, core.NewValidationError(ErrNoSchoolYear)
	}
	for _, s := range yr.Students {
		if s.Matricule == ns.Matricule {
			return core.Student{}, core.NewValidationError(
				ErrMatriculeExists,
				core.FieldError{Field: "matricule", Error: ErrMatriculeExists.Error()},
			)
		}
	}

	st := core.Student{
		ID:          uuid.New().String(),
		Matricule:   ns.Matricule,
		Name:        ns.Name,
		ClassName:   ns.ClassName,
		TotalAmount: ns.TotalAmount,
		AmountPaid:  0,
		CreatedAt:   nowFunc().UTC(),
	}
	yr.Students = append(yr.Students, st)
	svc.store.Save(doc)
	return st, nil
}

// Remove deletes the student by id from the current year. The student's
// payment history is intentionally kept: financial records outlive the
// student record.
func (svc *Service) Remove(id string) error {
	doc := svc.store.Load()
	yr, ok := doc.CurrentYear()
	if !ok {
		return core.NewValidationError(ErrNoSchoolYear)
	}
	for i, s := range yr.Students {
		if s.ID == id {
			yr.Students = append(yr.Students[:i], yr.Students[i+1:]...)
			svc.store.Save(doc)
			return nil
		}
	}
	return ErrNotFound
}

// QueryAll returns the current year's students in insertion order.
func (svc *Service) QueryAll() []core.Student {
	doc := svc.store.Load()
	yr, ok := doc.CurrentYear()
	if !ok {
		return []core.Student{}
	}
	return yr.Students
}

func (svc *Service) GetByID(id string) (core.Student, error) {
	for _, s := range svc.QueryAll() {
		if s.ID == id {
			return s, nil
		}
	}
	return core.Student{}, ErrNotFound
}

// Find matches a student by exact matricule (case-insensitive) or by name
// substring; the first match wins.
func (svc *Service) Find(term string) (core.Student, error) {
	term = core.CleanString(term, true)
	for _, s := range svc.QueryAll() {
		if strings.ToLower(s.Matricule) == term || strings.Contains(strings.ToLower(s.Name), term) {
			return s, nil
		}
	}
	return core.Student{}, ErrNotFound
}
