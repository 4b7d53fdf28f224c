package bootstrap

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/selectdb/observer/pkg/service"
	"github.com/selectdb/observer/pkg/storage"
	"github.com/selectdb/observer/pkg/utils"
	"github.com/selectdb/observer/pkg/version"
	"github.com/selectdb/observer/pkg/xerror"
	"github.com/selectdb/observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
)

var (
	printVersion bool
	dbConf       storage.Config
	host         string
	port         int
)

func init() {
	flag.BoolVar(&printVersion, "version", false, "The program's version")

	flag.StringVar(&dbConf.Type, "db_type", storage.TypeNone, "record db type: none, sqlite3, mysql or postgresql")
	flag.StringVar(&dbConf.Path, "db_dir", "observer.db", "sqlite3 db file")
	flag.StringVar(&dbConf.Host, "db_host", "127.0.0.1", "record db host")
	flag.IntVar(&dbConf.Port, "db_port", 3306, "record db port")
	flag.StringVar(&dbConf.User, "db_user", "root", "record db user")
	flag.StringVar(&dbConf.Password, "db_password", "", "record db password")

	flag.StringVar(&host, "host", "127.0.0.1", "status service host")
	flag.IntVar(&port, "port", 0, "status service port, 0 disables the service")
}

// Env is what a demo program needs besides its subject and observers.
type Env struct {
	DB storage.DB

	httpService *service.HttpService
	wg          sync.WaitGroup
}

// Setup parses flags, then initializes logging, metrics, record storage and the status service.
func Setup(serviceName string) (*Env, error) {
	flag.Parse()

	if printVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	utils.InitLog()
	log.Infof("%s start, version: %s", serviceName, version.GetVersion())

	if _, err := xmetrics.InitGlobal(serviceName, port > 0); err != nil {
		return nil, err
	}

	db, err := storage.NewDB(dbConf)
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "new record db %s failed", dbConf.Type)
	}

	env := &Env{DB: db}
	if port > 0 {
		env.httpService = service.NewHttpServer(host, port, db)
		env.wg.Add(1)
		go func() {
			defer env.wg.Done()

			if err := env.httpService.Start(); err != nil {
				log.Fatalf("http service start error: %+v", err)
			}
		}()
	}

	return env, nil
}

// Wait blocks until a termination signal when the status service runs, then stops it.
func (e *Env) Wait() {
	if e.httpService == nil {
		return
	}

	log.Infof("status service running, waiting for signal")
	NewSignalMux(func(os.Signal) bool {
		if err := e.httpService.Stop(); err != nil {
			log.Errorf("stop http service failed: %+v", err)
		}
		return true
	}).Serve()
	e.wg.Wait()
}

func (e *Env) Close() {
	if e.DB == nil {
		return
	}
	if err := e.DB.Close(); err != nil {
		log.Warnf("close record db failed: %+v", err)
	}
}
