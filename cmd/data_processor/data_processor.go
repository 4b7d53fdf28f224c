package main

import (
	"flag"
	"os"

	"github.com/selectdb/observer/pkg/bootstrap"
	"github.com/selectdb/observer/pkg/observer"
	"github.com/selectdb/observer/pkg/processor"
	"github.com/selectdb/observer/pkg/utils"

	log "github.com/sirupsen/logrus"
)

var (
	name  string
	email string
)

func init() {
	flag.StringVar(&name, "name", "FinancialProcessor", "data processor name")
	flag.StringVar(&email, "email", "admin@example.com", "email alert recipient")
}

func mustAttach(p *processor.DataProcessor, o utils.Observer[processor.DataChange]) {
	if err := p.Attach(o); err != nil {
		log.Fatalf("attach observer to %s failed: %+v", p.Name(), err)
	}
}

// observer failures never abort the run, they are reported and the next change goes on
func report(err error) {
	if err != nil {
		log.Errorf("notify failed: %v", err)
	}
}

func main() {
	env, err := bootstrap.Setup("data-processor")
	if err != nil {
		log.Fatalf("setup failed: %+v", err)
	}
	defer env.Close()

	p := processor.NewDataProcessor(name)

	activityLogger := observer.NewConsoleLogger[processor.DataChange]("ActivityLogger", os.Stdout)
	debugLogger := observer.NewConsoleLogger[processor.DataChange]("DebugLogger", os.Stdout)
	emailAlert := observer.NewEmailSender[processor.DataChange](email, os.Stdout)

	// Step 1: attach observers
	mustAttach(p, activityLogger)
	mustAttach(p, debugLogger)
	mustAttach(p, emailAlert)
	if env.DB != nil {
		mustAttach(p, observer.NewRecorder[processor.DataChange](env.DB))
	}

	// Step 2: simulate state changes
	report(p.AddDataPoint("revenue", 1000))
	report(p.AddDataPoint("expenses", 300))

	// Step 3: detach one observer
	p.Detach(debugLogger)

	report(p.AddDataPoint("profit", 700))
	report(p.RemoveDataPoint("expenses"))
	report(p.RemoveDataPoint("expenses"))

	// Step 4: attaching a nil observer fails loudly
	if err := p.Attach(nil); err != nil {
		log.Infof("attach rejected: %v", err)
	}

	log.Infof("[%s] final data: %v", p.Name(), p.Snapshot())
	env.Wait()
}
