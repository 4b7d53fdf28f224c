package xmetrics

import (
	"errors"
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/hashicorp/go-metrics/prometheus"
	"github.com/selectdb/observer/pkg/xerror"
)

// InitGlobal installs the global metrics with an in-memory sink (dumped on SIGUSR1) and,
// when withPrometheus is set, a prometheus sink served by promhttp.
func InitGlobal(serviceName string, withPrometheus bool) (*metrics.InmemSink, error) {
	inm := metrics.NewInmemSink(10*time.Second, time.Minute)
	metrics.DefaultInmemSignal(inm)

	var sink metrics.MetricSink = inm
	if withPrometheus {
		promSink, err := prometheus.NewPrometheusSink()
		if err != nil {
			return nil, xerror.Wrap(err, xerror.Normal, "init prometheus sink failed")
		}
		sink = metrics.FanoutSink{inm, promSink}
	}

	conf := metrics.DefaultConfig(serviceName)
	conf.EnableHostname = false
	if _, err := metrics.NewGlobal(conf, sink); err != nil {
		return nil, xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return inm, nil
}

func AddError(err error) {
	var xerr *xerror.XError
	if !errors.As(err, &xerr) {
		return
	}
	metrics.IncrCounter(ErrorMetrics(xerr).Tag(), 1)
}

func AddSubject(subjectName string) {
	metrics.SetGauge(SubjectMetrics(subjectName).ObserverNum().Tag(), 0)

	metrics.IncrCounter(DashboardMetrics().SubjectNum().Tag(), 1)
}

func SetObserverNum(subjectName string, num int) {
	metrics.SetGauge(SubjectMetrics(subjectName).ObserverNum().Tag(), float32(num))
}

func Notify(subjectName string, delivered int, failed int) {
	metrics.IncrCounter(SubjectMetrics(subjectName).Notifications().Tag(), 1)
	metrics.IncrCounter(SubjectMetrics(subjectName).Deliveries().Tag(), float32(delivered))
	if failed > 0 {
		metrics.IncrCounter(SubjectMetrics(subjectName).FailedDeliveries().Tag(), float32(failed))
	}

	metrics.IncrCounter(DashboardMetrics().NotificationNum().Tag(), 1)
}
