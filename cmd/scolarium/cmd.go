package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"scolarium/core"
	"scolarium/core/payment"
	"scolarium/core/settings"
	"scolarium/core/student"
	promptsvc "scolarium/services/prompt"
	"scolarium/ui/router"
)

type commandLine struct {
	in  io.Reader
	out io.Writer

	router  *router.Router
	confirm promptsvc.Confirmer

	studentSvc  *student.Service
	paymentSvc  *payment.Service
	settingsSvc *settings.Service

	reader *bufio.Reader
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Commands:")
	fmt.Fprintln(cli.out, "  #<route>[/params]          - open a view (#dashboard, #students, #payments, #settings)")
	fmt.Fprintln(cli.out, "  add-student                - register a student (prompts for details)")
	fmt.Fprintln(cli.out, "  pay                        - record a payment (prompts for details)")
	fmt.Fprintln(cli.out, "  cancel PAYMENT_ID          - cancel a payment and refund the balance")
	fmt.Fprintln(cli.out, "  remove-student TERM        - remove a student found by matricule or name")
	fmt.Fprintln(cli.out, "  set FIELD VALUE            - update a settings field (eg. set settings.schoolName Foo)")
	fmt.Fprintln(cli.out, "  set-year [KEY]             - select (and create) a school year; defaults to the current one")
	fmt.Fprintln(cli.out, "  clear                      - wipe all stored data")
	fmt.Fprintln(cli.out, "  help | quit")
}

func (cli *commandLine) run() {
	if br, ok := cli.in.(*bufio.Reader); ok {
		cli.reader = br
	} else {
		cli.reader = bufio.NewReader(cli.in)
	}
	for {
		fmt.Fprint(cli.out, "> ")
		line, err := cli.reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			cli.router.Navigate(line)
			continue
		}

		args := strings.Fields(line)
		switch args[0] {
		case "add-student":
			cli.addStudent()
		case "pay":
			cli.recordPayment()
		case "cancel":
			cli.cancelPayment(args[1:])
		case "remove-student":
			cli.removeStudent(args[1:])
		case "set":
			cli.setField(args[1:])
		case "set-year":
			cli.setYear(args[1:])
		case "clear":
			cli.clearData()
		case "help":
			cli.printUsage()
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(cli.out, "unknown command %q\n", args[0])
			cli.printUsage()
		}
	}
}

func (cli *commandLine) prompt(label string) string {
	fmt.Fprint(cli.out, label+": ")
	line, err := cli.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (cli *commandLine) addStudent() {
	ns := student.NewStudent{
		Matricule: cli.prompt("Matricule (unique)"),
		Name:      cli.prompt("Full name"),
		ClassName: cli.prompt("Class (eg. 6A)"),
	}
	total, err := strconv.ParseFloat(cli.prompt("Total amount due"), 64)
	if err != nil {
		fmt.Fprintln(cli.out, "invalid amount")
		return
	}
	ns.TotalAmount = total

	st, err := cli.studentSvc.Create(ns)
	if err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintf(cli.out, "Student added: %s (%s)\n", st.Name, st.Matricule)
}

func (cli *commandLine) recordPayment() {
	st, err := cli.studentSvc.Find(cli.prompt("Student (matricule or name)"))
	if err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintf(cli.out, "Found: %s (%s), class %s, balance %s\n",
		st.Name, st.Matricule, st.ClassName, core.FormatCurrency(st.Balance()))

	amount, err := strconv.ParseFloat(cli.prompt("Amount"), 64)
	if err != nil {
		fmt.Fprintln(cli.out, "invalid amount")
		return
	}
	payType := cli.prompt("Type [Cash/MobileMoney/BankTransfer] (default Cash)")
	if payType == "" {
		payType = string(core.PaymentCash)
	}

	pay, upd, err := cli.paymentSvc.Record(payment.NewPayment{
		StudentID: st.ID,
		Amount:    amount,
		Type:      core.PaymentType(payType),
	})
	if err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintf(cli.out, "Payment of %s recorded for %s. New balance: %s\n",
		core.FormatCurrency(pay.Amount), upd.Name, core.FormatCurrency(upd.Balance()))
}

func (cli *commandLine) cancelPayment(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(cli.out, "usage: cancel PAYMENT_ID")
		return
	}
	if !cli.confirm.Confirm("Really cancel this payment?") {
		return
	}
	if err := cli.paymentSvc.Cancel(args[0]); err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintln(cli.out, "Payment canceled and student balance updated.")
}

func (cli *commandLine) removeStudent(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(cli.out, "usage: remove-student TERM")
		return
	}
	st, err := cli.studentSvc.Find(strings.Join(args, " "))
	if err != nil {
		cli.report(err)
		return
	}
	if !cli.confirm.Confirm(fmt.Sprintf("Really remove %s (%s)?", st.Name, st.Matricule)) {
		return
	}
	if err := cli.studentSvc.Remove(st.ID); err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintln(cli.out, "Student removed. Payment history is kept.")
}

func (cli *commandLine) setField(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(cli.out, "usage: set FIELD VALUE")
		fmt.Fprintln(cli.out, "fields:")
		for _, f := range core.Fields() {
			fmt.Fprintf(cli.out, "  %s\n", f)
		}
		return
	}
	field, err := core.ParseField(args[0])
	if err != nil {
		cli.report(err)
		return
	}

	raw := strings.Join(args[1:], " ")
	var value interface{}
	switch field {
	case core.FieldYearStartMonth:
		month, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(cli.out, "invalid month")
			return
		}
		value = month
	case core.FieldDarkMode:
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			fmt.Fprintln(cli.out, "expected true or false")
			return
		}
		value = enabled
	default:
		value = raw
	}

	if _, err := cli.settingsSvc.Update(field, value); err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintf(cli.out, "%s updated.\n", field)
}

func (cli *commandLine) setYear(args []string) {
	key := strings.Join(args, " ")
	if key == "" {
		key = cli.settingsSvc.DefaultYearKey(time.Now())
	}
	if _, err := cli.settingsSvc.SetCurrentYear(key); err != nil {
		cli.report(err)
		return
	}
	fmt.Fprintf(cli.out, "Active school year: %s\n", key)
}

func (cli *commandLine) clearData() {
	if !cli.confirm.Confirm("Really wipe ALL stored data?") {
		return
	}
	cli.settingsSvc.ClearAll()
	fmt.Fprintln(cli.out, "All data cleared.")
}

// report prints an error the way the UI toasts would: validation failures get
// their field messages, anything else its plain message.
func (cli *commandLine) report(err error) {
	if vErr, ok := err.(*core.ValidationError); ok {
		if len(vErr.Fields) == 0 {
			fmt.Fprintf(cli.out, "error: %s\n", vErr.Error())
			return
		}
		for _, fld := range vErr.Fields {
			fmt.Fprintf(cli.out, "error: %s: %s\n", fld.Field, fld.Error)
		}
		return
	}
	fmt.Fprintf(cli.out, "error: %s\n", err.Error())
}
