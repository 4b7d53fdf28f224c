package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/selectdb/observer/pkg/storage"
	"github.com/selectdb/observer/pkg/test_util"
	"github.com/selectdb/observer/pkg/xerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withConf(t *testing.T, conf storage.Config, statusPort int) {
	oldConf, oldPort := dbConf, port
	dbConf, port = conf, statusPort
	t.Cleanup(func() {
		dbConf, port = oldConf, oldPort
	})
}

func TestEnv_CloseNilDB(t *testing.T) {
	env := &Env{}
	assert.NotPanics(t, env.Close)
}

func TestEnv_CloseDBError(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := test_util.NewMockDB(ctrl)
	db.EXPECT().Close().Return(errors.New("already closed"))

	env := &Env{DB: db}
	assert.NotPanics(t, env.Close)
}

func TestEnv_WaitWithoutService(t *testing.T) {
	env := &Env{}

	done := make(chan struct{})
	go func() {
		env.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked without a status service")
	}
}

func TestSetup_NoDBNoService(t *testing.T) {
	withConf(t, storage.Config{Type: storage.TypeNone}, 0)

	env, err := Setup("bootstrap_test")
	require.NoError(t, err)
	assert.Nil(t, env.DB)
	assert.Nil(t, env.httpService)

	env.Wait()
	env.Close()
}

func TestSetup_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observer.db")
	withConf(t, storage.Config{Type: storage.TypeSQLite, Path: path}, 0)

	env, err := Setup("bootstrap_test")
	require.NoError(t, err)
	require.NotNil(t, env.DB)
	defer env.Close()

	require.NoError(t, env.DB.AddRecord(&storage.Record{ID: "1", Subject: "TemperatureSensor", Payload: "11", CreatedAt: 1}))
	count, err := env.DB.CountRecords("TemperatureSensor")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSetup_UnknownDBType(t *testing.T) {
	withConf(t, storage.Config{Type: "redis"}, 0)

	env, err := Setup("bootstrap_test")
	assert.Nil(t, env)

	var xerr *xerror.XError
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerror.DB, xerr.Category())
}

func TestSignalMux_Serve(t *testing.T) {
	received := make([]os.Signal, 0)
	mux := NewSignalMux(func(sig os.Signal) bool {
		received = append(received, sig)
		return len(received) == 2
	})

	done := make(chan struct{})
	go func() {
		mux.Serve()
		close(done)
	}()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after the handler accepted a signal")
	}
	assert.Equal(t, []os.Signal{syscall.SIGHUP, syscall.SIGHUP}, received)
}
