package receiptsvc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"scolarium/core"
)

type consoleService struct {
	out io.Writer
	log core.Logger
}

var _ core.ReceiptService = (*consoleService)(nil)

// NewConsoleService prints rendered receipts to out; the console stand-in
// for the browser print flow.
func NewConsoleService(out io.Writer, log core.Logger) core.ReceiptService {
	return &consoleService{out: out, log: log}
}

func (svc consoleService) Print(r core.Receipt) {
	text, err := r.Render()
	if err != nil {
		svc.log.Error("rendering receipt", errors.Wrap(err, r.Number()))
		return
	}
	_, _ = fmt.Fprint(svc.out, text)
}
