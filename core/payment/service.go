package payment

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"scolarium/core"
	"scolarium/storage"
)

var (
	// errors
	ErrNotFound        = errors.New("payment not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrNoSchoolYear    = errors.New("no active school year is set")

	nowFunc = time.Now // mockable
)

type Service struct {
	store    storage.Store
	log      core.Logger
	receipts core.ReceiptService
}

func NewService(store storage.Store, log core.Logger, receipts core.ReceiptService) *Service {
	return &Service{store: store, log: log, receipts: receipts}
}

// Record applies a payment to a student of the current school year: it
// appends a payment record snapshotting the student's matricule, name and
// class at this instant, and increments the student's paid amount. If the
// student cannot be found nothing is persisted. On success a receipt is
// emitted with the payment and the updated student.
func (svc *Service) Record(np NewPayment) (core.Payment, core.Student, error) {
	if err := core.Validate.Struct(np); err != nil {
		return core.Payment{}, core.Student{}, core.TranslateValidationError(err)
	}

	doc := svc.store.Load()
	yr, ok := doc.CurrentYear()
	if !ok {
		return core.Payment{}, core.Student{}, core.NewValidationError(ErrNoSchoolYear)
	}

	idx := -1
	for i, s := range yr.Students {
		if s.ID == np.StudentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Payment{}, core.Student{}, errors.Wrapf(ErrStudentNotFound, "id %q", np.StudentID)
	}

	st := yr.Students[idx]
	pay := core.Payment{
		ID:        uuid.New().String(),
		StudentID: st.ID,
		Matricule: st.Matricule,
		Name:      st.Name,
		ClassName: st.ClassName,
		Amount:    np.Amount,
		Type:      np.Type,
		Date:      nowFunc().UTC(),
	}
	yr.Payments = append(yr.Payments, pay)
	st.AmountPaid += np.Amount
	yr.Students[idx] = st

	svc.store.Save(doc)
	svc.receipts.Print(core.Receipt{Payment: pay, Student: st, Settings: doc.Settings})
	return pay, st, nil
}

// Cancel removes a payment by id and refunds the student's paid amount,
// clamped at zero. When the payment's student no longer exists the deletion
// still persists; only the balance adjustment is skipped, with a warning.
func (svc *Service) Cancel(id string) error {
	doc := svc.store.Load()
	yr, ok := doc.CurrentYear()
	if !ok {
		return core.NewValidationError(ErrNoSchoolYear)
	}

	idx := -1
	for i, p := range yr.Payments {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	pay := yr.Payments[idx]
	yr.Payments = append(yr.Payments[:idx], yr.Payments[idx+1:]...)

	adjusted := false
	for i, s := range yr.Students {
		if s.ID == pay.StudentID {
			s.AmountPaid = math.Max(0, s.AmountPaid-pay.Amount)
			yr.Students[i] = s
			adjusted = true
			break
		}
	}
	if !adjusted {
		svc.log.Warn("payment canceled but student is gone; balance not adjusted", pay.StudentID)
	}

	svc.store.Save(doc)
	return nil
}

// QueryAll returns the current year's payments, most recent first. Equal
// timestamps keep their insertion order.
func (svc *Service) QueryAll() []core.Payment {
	doc := svc.store.Load()
	yr, ok := doc.CurrentYear()
	if !ok {
		return []core.Payment{}
	}
	res := make([]core.Payment, len(yr.Payments))
	copy(res, yr.Payments)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.After(res[j].Date)
	})
	return res
}

// QueryByStudent returns a student's payments, most recent first.
func (svc *Service) QueryByStudent(studentID string) []core.Payment {
	all := svc.QueryAll()
	res := make([]core.Payment, 0, len(all))
	for _, p := range all {
		if p.StudentID == studentID {
			res = append(res, p)
		}
	}
	return res
}
