package core

import (
	"strings"
	"sync"
	"text/template"
)

var (
	receiptTmpl     *template.Template
	receiptTmplInit sync.Once
)

type (
	// Receipt is an official payment receipt: one payment, the student's
	// state just after it was applied, and the institution header.
	Receipt struct {
		Payment  Payment
		Student  Student
		Settings Settings
	}

	// ReceiptService is any service that can emit payment receipts.
	ReceiptService interface {
		Print(r Receipt)
	}
)

// Number returns the short human-facing receipt number derived from the
// payment id.
func (r Receipt) Number() string {
	id := r.Payment.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func (r Receipt) Render() (string, error) {
	receiptTmplInit.Do(parseReceiptTemplate)

	var b strings.Builder
	if err := receiptTmpl.Execute(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}

func parseReceiptTemplate() {
	receiptTmpl = template.Must(template.New("receipt").
		Funcs(template.FuncMap{"currency": FormatCurrency}).
		Parse(receiptText))
}

const receiptText = `==============================================
{{.Settings.SchoolName}}
{{- if .Settings.SchoolAddress}}
{{.Settings.SchoolAddress}}
{{- end}}
{{- if .Settings.SchoolPhone}}
Tel: {{.Settings.SchoolPhone}}
{{- end}}
----------------------------------------------
PAYMENT RECEIPT No {{.Number}}

Date:       {{.Payment.Date.Format "02/01/2006 15:04"}}
Type:       {{.Payment.Type}}

Student:    {{.Payment.Name}} ({{.Payment.Matricule}})
Class:      {{.Payment.ClassName}}

Tuition due:        {{currency .Student.TotalAmount}}
This payment:       {{currency .Payment.Amount}}
Total paid:         {{currency .Student.AmountPaid}}
Remaining balance:  {{currency .Student.Balance}}

{{.Settings.SignatureName}}
{{.Settings.SignatureTitle}}
==============================================
`
