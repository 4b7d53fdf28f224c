package sensor

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/selectdb/observer/pkg/observer"
	"github.com/selectdb/observer/pkg/test_util"
	"github.com/selectdb/observer/pkg/utils"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestTemperatureSensor_LoggerAndDisplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temperature_sensor.log")
	fileLogger, closer := utils.NewFileLogger(path)

	var console bytes.Buffer
	s := NewTemperatureSensor("")
	require.NoError(t, s.Attach(observer.NewTemperatureLogger(fileLogger)))
	require.NoError(t, s.Attach(observer.NewDisplay(&console)))

	require.NoError(t, s.SetTemperature(11))
	require.NoError(t, s.SetTemperature(17))
	require.NoError(t, closer.Close())

	assert.Equal(t, "Temperature: 11\nTemperature: 17\n", console.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Temperature: 11\nTemperature: 17\n", string(content))

	temperature, ok := s.Temperature()
	assert.True(t, ok)
	assert.Equal(t, 17.0, temperature)
}

func TestTemperatureSensor_EachObserverCalledPerReading(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewTemperatureSensor("greenhouse")

	logger := test_util.NewMockObserver[float64](ctrl)
	display := test_util.NewMockObserver[float64](ctrl)
	require.NoError(t, s.Attach(logger))
	require.NoError(t, s.Attach(display))

	gomock.InOrder(
		logger.EXPECT().Update(s, 11.0).Return(nil),
		display.EXPECT().Update(s, 11.0).Return(nil),
		logger.EXPECT().Update(s, 17.0).Return(nil),
		display.EXPECT().Update(s, 17.0).Return(nil),
	)

	require.NoError(t, s.SetTemperature(11))
	require.NoError(t, s.SetTemperature(17))
}

func TestTemperatureSensor_SameValueStillNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewTemperatureSensor("greenhouse")

	display := test_util.NewMockObserver[float64](ctrl)
	display.EXPECT().Update(s, 20.5).Return(nil).Times(2)
	require.NoError(t, s.Attach(display))

	require.NoError(t, s.SetTemperature(20.5))
	require.NoError(t, s.SetTemperature(20.5))
}

func TestTemperatureSensor_NoReading(t *testing.T) {
	s := NewTemperatureSensor("greenhouse")
	_, ok := s.Temperature()
	assert.False(t, ok)
	assert.Equal(t, "greenhouse", s.Name())
}
