package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"scolarium/core"
	"scolarium/core/payment"
	"scolarium/core/report"
	"scolarium/core/settings"
	"scolarium/core/student"
	logsvc "scolarium/services/logger"
	promptsvc "scolarium/services/prompt"
	receiptsvc "scolarium/services/receipt"
	"scolarium/storage/localfile"
	"scolarium/ui/console"
	"scolarium/ui/router"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stderr, conf.AppName+" ", log.LstdFlags|log.Lshortfile)
	var logger core.Logger
	if conf.RollbarToken != "" {
		rl := logsvc.NewRollbarLogger(std, conf)
		rl.Enable(!conf.TestMode)
		logger = rl
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	store, err := localfile.NewStore(conf.DataPath(), logger, func(msg string) {
		_, _ = fmt.Fprintln(os.Stderr, "ALERT: "+msg)
	})
	if err != nil {
		std.Fatalf("opening store: %+v", err)
	}

	receipts := receiptsvc.NewConsoleService(os.Stdout, logger)
	studentSvc := student.NewService(store, logger)
	paymentSvc := payment.NewService(store, logger, receipts)
	settingsSvc := settings.NewService(store, logger)
	reportSvc := report.NewService(store)

	rtr := router.New(console.NewContainer(os.Stdout), logger)
	console.NewViews(os.Stdout, studentSvc, paymentSvc, settingsSvc, reportSvc).Register(rtr)

	stdin := bufio.NewReader(os.Stdin)
	cli := &commandLine{
		in:          stdin,
		out:         os.Stdout,
		router:      rtr,
		confirm:     promptsvc.NewStdioConfirmer(stdin, os.Stdout),
		studentSvc:  studentSvc,
		paymentSvc:  paymentSvc,
		settingsSvc: settingsSvc,
	}

	fmt.Printf("%s — type help for commands, quit to exit.\n", conf.AppName)
	rtr.Navigate("#dashboard")
	cli.run()
}
