package report

import (
	"sort"

	"scolarium/core"
	"scolarium/storage"
)

type (
	ClassTotal struct {
		ClassName string
		Students  int
		Expected  float64
		Collected float64
	}

	// Summary aggregates one school year's finances for the dashboard.
	Summary struct {
		Year           string
		StudentCount   int
		PaymentCount   int
		TotalExpected  float64
		TotalCollected float64
		Outstanding    float64
		ByClass        []ClassTotal
		RecentPayments []core.Payment
	}
)

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Summary computes the current year's totals. recent caps the number of
// most-recent payments included (0 for none).
func (svc *Service) Summary(recent int) Summary {
	doc := svc.store.Load()
	sum := Summary{Year: doc.CurrentSchoolYear, ByClass: []ClassTotal{}, RecentPayments: []core.Payment{}}

	yr, ok := doc.CurrentYear()
	if !ok {
		return sum
	}

	classTotals := map[string]*ClassTotal{}
	for _, s := range yr.Students {
		sum.StudentCount++
		sum.TotalExpected += s.TotalAmount
		sum.TotalCollected += s.AmountPaid
		sum.Outstanding += s.Balance()

		ct, ok := classTotals[s.ClassName]
		if !ok {
			ct = &ClassTotal{ClassName: s.ClassName}
			classTotals[s.ClassName] = ct
		}
		ct.Students++
		ct.Expected += s.TotalAmount
		ct.Collected += s.AmountPaid
	}
	sum.PaymentCount = len(yr.Payments)

	for _, ct := range classTotals {
		sum.ByClass = append(sum.ByClass, *ct)
	}
	sort.Slice(sum.ByClass, func(i, j int) bool {
		return sum.ByClass[i].ClassName < sum.ByClass[j].ClassName
	})

	if recent > 0 {
		payments := make([]core.Payment, len(yr.Payments))
		copy(payments, yr.Payments)
		sort.SliceStable(payments, func(i, j int) bool {
			return payments[i].Date.After(payments[j].Date)
		})
		if len(payments) > recent {
			payments = payments[:recent]
		}
		sum.RecentPayments = payments
	}
	return sum
}
