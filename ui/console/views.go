package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"scolarium/core"
	"scolarium/core/payment"
	"scolarium/core/report"
	"scolarium/core/settings"
	"scolarium/core/student"
	"scolarium/ui/router"
)

// Views holds the render functions behind the base routes.
type Views struct {
	out io.Writer

	studentSvc  *student.Service
	paymentSvc  *payment.Service
	settingsSvc *settings.Service
	reportSvc   *report.Service
}

func NewViews(
	out io.Writer,
	studentSvc *student.Service,
	paymentSvc *payment.Service,
	settingsSvc *settings.Service,
	reportSvc *report.Service,
) *Views {
	return &Views{
		out:         out,
		studentSvc:  studentSvc,
		paymentSvc:  paymentSvc,
		settingsSvc: settingsSvc,
		reportSvc:   reportSvc,
	}
}

func (v *Views) Register(r *router.Router) {
	r.Handle("#dashboard", v.Dashboard)
	r.Handle("#students", v.Students)
	r.Handle("#payments", v.Payments)
	r.Handle("#settings", v.Settings)
}

func (v *Views) Dashboard(_ []string) error {
	sum := v.reportSvc.Summary(5)
	if sum.Year == "" {
		fmt.Fprintln(v.out, "\n== Dashboard ==\nNo school year selected yet. Use set-year to pick one.")
		return nil
	}
	fmt.Fprintf(v.out, "\n== Dashboard — %s ==\n", sum.Year)
	fmt.Fprintf(v.out, "Students: %d   Payments: %d\n", sum.StudentCount, sum.PaymentCount)
	fmt.Fprintf(v.out, "Expected:    %s\n", core.FormatCurrency(sum.TotalExpected))
	fmt.Fprintf(v.out, "Collected:   %s\n", core.FormatCurrency(sum.TotalCollected))
	fmt.Fprintf(v.out, "Outstanding: %s\n", core.FormatCurrency(sum.Outstanding))

	if len(sum.ByClass) > 0 {
		w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "\nClass\tStudents\tExpected\tCollected")
		for _, ct := range sum.ByClass {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
				ct.ClassName, ct.Students, core.FormatCurrency(ct.Expected), core.FormatCurrency(ct.Collected))
		}
		w.Flush()
	}
	if len(sum.RecentPayments) > 0 {
		fmt.Fprintln(v.out, "\nRecent payments:")
		for _, p := range sum.RecentPayments {
			fmt.Fprintf(v.out, "  %s  %s  %s (%s)\n",
				p.Date.Format("02/01/2006 15:04"), core.FormatCurrency(p.Amount), p.Name, p.Type)
		}
	}
	return nil
}

// Students renders the student list, or one student's profile for
// "#students/view/<id>".
func (v *Views) Students(params []string) error {
	if len(params) >= 2 && params[0] == "view" {
		return v.studentProfile(params[1])
	}

	students := v.studentSvc.QueryAll()
	fmt.Fprintf(v.out, "\n== Students (%d) ==\n", len(students))
	if len(students) == 0 {
		fmt.Fprintln(v.out, "No student registered for this year.")
		return nil
	}
	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Matricule\tName\tClass\tTotal due\tPaid\tBalance")
	for _, s := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Matricule, s.Name, s.ClassName,
			core.FormatCurrency(s.TotalAmount), core.FormatCurrency(s.AmountPaid), core.FormatCurrency(s.Balance()))
	}
	return w.Flush()
}

func (v *Views) studentProfile(id string) error {
	s, err := v.studentSvc.GetByID(id)
	if err == student.ErrNotFound {
		// not-found is a dedicated presentation, not a fault
		fmt.Fprintf(v.out, "\nNo student with id %q.\n", id)
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintf(v.out, "\n== %s (%s) — %s ==\n", s.Name, s.Matricule, s.ClassName)
	fmt.Fprintf(v.out, "Total due: %s   Paid: %s   Balance: %s\n",
		core.FormatCurrency(s.TotalAmount), core.FormatCurrency(s.AmountPaid), core.FormatCurrency(s.Balance()))

	payments := v.paymentSvc.QueryByStudent(s.ID)
	if len(payments) == 0 {
		fmt.Fprintln(v.out, "No payment recorded.")
		return nil
	}
	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tAmount\tType\tPayment ID")
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.Date.Format("02/01/2006 15:04"), core.FormatCurrency(p.Amount), p.Type, p.ID)
	}
	return w.Flush()
}

func (v *Views) Payments(_ []string) error {
	payments := v.paymentSvc.QueryAll()
	fmt.Fprintf(v.out, "\n== Payments (%d) ==\n", len(payments))
	if len(payments) == 0 {
		fmt.Fprintln(v.out, "No payment recorded for this year.")
		return nil
	}
	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tStudent\tAmount\tType\tPayment ID")
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Date.Format("02/01/2006 15:04"), p.Name, core.FormatCurrency(p.Amount), p.Type, p.ID)
	}
	return w.Flush()
}

func (v *Views) Settings(_ []string) error {
	s := v.settingsSvc.Get()
	fmt.Fprintln(v.out, "\n== Settings ==")
	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", core.FieldSchoolName, s.SchoolName)
	fmt.Fprintf(w, "%s\t%s\n", core.FieldSchoolPhone, s.SchoolPhone)
	fmt.Fprintf(w, "%s\t%s\n", core.FieldSchoolAddress, s.SchoolAddress)
	fmt.Fprintf(w, "%s\t%s\n", core.FieldSchoolLogo, s.SchoolLogo)
	fmt.Fprintf(w, "%s\t%s\n", core.FieldSignatureName, s.SignatureName)
	fmt.Fprintf(w, "%s\t%s\n", core.FieldSignatureTitle, s.SignatureTitle)
	fmt.Fprintf(w, "%s\t%d\n", core.FieldYearStartMonth, s.SchoolYearStartMonth)
	fmt.Fprintf(w, "%s\t%t\n", core.FieldDarkMode, s.DarkMode)
	if err := w.Flush(); err != nil {
		return err
	}

	current := v.settingsSvc.CurrentYear()
	years := v.settingsSvc.Years()
	fmt.Fprintf(v.out, "\nSchool years: %d\n", len(years))
	for _, y := range years {
		marker := " "
		if y == current {
			marker = "*"
		}
		fmt.Fprintf(v.out, " %s %s\n", marker, y)
	}
	return nil
}
