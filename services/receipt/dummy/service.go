package dummyreceipt

import (
	"sync"

	"scolarium/core"
)

// Service records receipts instead of printing them; for tests.
type Service struct {
	mu      sync.Mutex
	Printed []core.Receipt
}

var _ core.ReceiptService = (*Service)(nil)

func NewService() *Service {
	return &Service{Printed: make([]core.Receipt, 0)}
}

func (svc *Service) Print(r core.Receipt) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.Printed = append(svc.Printed, r)
}
