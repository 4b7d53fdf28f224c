package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/selectdb/observer/pkg/bootstrap"
	"github.com/selectdb/observer/pkg/observer"
	"github.com/selectdb/observer/pkg/sensor"
	"github.com/selectdb/observer/pkg/utils"

	log "github.com/sirupsen/logrus"
)

var (
	name           string
	readings       string
	temperatureLog string
)

func init() {
	flag.StringVar(&name, "name", "TemperatureSensor", "sensor name")
	flag.StringVar(&readings, "readings", "11,17", "comma separated temperature readings")
	flag.StringVar(&temperatureLog, "temperature_log", "temperature_sensor.log", "file the temperature logger appends to")
}

func parseReadings(s string) ([]float64, error) {
	values := make([]float64, 0)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func mustAttach(s *sensor.TemperatureSensor, o utils.Observer[float64]) {
	if err := s.Attach(o); err != nil {
		log.Fatalf("attach observer to %s failed: %+v", s.Name(), err)
	}
}

func main() {
	env, err := bootstrap.Setup("temperature-sensor")
	if err != nil {
		log.Fatalf("setup failed: %+v", err)
	}
	defer env.Close()

	values, err := parseReadings(readings)
	if err != nil {
		log.Fatalf("parse readings %q failed: %v", readings, err)
	}

	fileLogger, closer := utils.NewFileLogger(temperatureLog)
	defer closer.Close()

	s := sensor.NewTemperatureSensor(name)
	mustAttach(s, observer.NewTemperatureLogger(fileLogger))
	mustAttach(s, observer.NewDisplay(os.Stdout))
	if env.DB != nil {
		mustAttach(s, observer.NewRecorder[float64](env.DB))
	}

	for _, v := range values {
		if err := s.SetTemperature(v); err != nil {
			log.Errorf("notify temperature %v failed: %v", v, err)
		}
	}

	env.Wait()
}
