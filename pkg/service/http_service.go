package service

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/selectdb/observer/pkg/storage"
	"github.com/selectdb/observer/pkg/version"
	"github.com/selectdb/observer/pkg/xerror"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJson(w http.ResponseWriter, data interface{}) {
	if data, err := json.Marshal(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	} else {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

// HttpService is a read only status service: version, metrics and recorded notifications.
type HttpService struct {
	host   string
	port   int
	server *http.Server
	mux    *http.ServeMux

	db storage.DB
}

func NewHttpServer(host string, port int, db storage.DB) *HttpService {
	s := &HttpService{
		host: host,
		port: port,
		mux:  http.NewServeMux(),

		db: db,
	}
	s.RegisterHandlers()
	return s
}

// versionHandler returns the version as a JSON object with a "version" field.
func (s *HttpService) versionHandler(w http.ResponseWriter, r *http.Request) {
	log.Debugf("get version")

	type versionResult struct {
		Version string `json:"version"`
	}

	result := versionResult{Version: version.GetVersion()}
	writeJson(w, result)
}

// recordsHandler lists the recorded notifications of ?subject=
func (s *HttpService) recordsHandler(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	log.Debugf("get records, subject: %s", subject)

	if s.db == nil {
		http.Error(w, "no record storage configured", http.StatusServiceUnavailable)
		return
	}
	if subject == "" {
		http.Error(w, "subject is required", http.StatusBadRequest)
		return
	}

	records, err := s.db.GetRecords(subject)
	if err != nil {
		log.Warnf("get records of %s failed: %+v", subject, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type recordsResult struct {
		Subject string            `json:"subject"`
		Records []*storage.Record `json:"records"`
	}
	writeJson(w, recordsResult{Subject: subject, Records: records})
}

func (s *HttpService) subjectsHandler(w http.ResponseWriter, r *http.Request) {
	log.Debugf("list subjects")

	if s.db == nil {
		http.Error(w, "no record storage configured", http.StatusServiceUnavailable)
		return
	}

	subjects, err := s.db.GetSubjects()
	if err != nil {
		log.Warnf("list subjects failed: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type subjectsResult struct {
		Subjects []string `json:"subjects"`
	}
	writeJson(w, subjectsResult{Subjects: subjects})
}

func (s *HttpService) RegisterHandlers() {
	s.mux.HandleFunc("/version", s.versionHandler)
	s.mux.HandleFunc("/records", s.recordsHandler)
	s.mux.HandleFunc("/subjects", s.subjectsHandler)
	s.mux.Handle("/metrics", promhttp.Handler())
}

func (s *HttpService) Handler() http.Handler {
	return s.mux
}

func (s *HttpService) Start() error {
	addr := net.JoinHostPort(s.host, fmt.Sprint(s.port))
	log.Infof("Server listening on %s", addr)

	s.server = &http.Server{Addr: addr, Handler: s.mux}
	err := s.server.ListenAndServe()
	if err == nil {
		return nil
	} else if err == http.ErrServerClosed {
		log.Info("http server closed")
		return nil
	} else {
		return xerror.Wrapf(err, xerror.Normal, "http server start on %s failed", addr)
	}
}

// Stop stops the HTTP server gracefully.
func (s *HttpService) Stop() error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(context.TODO()); err != nil {
		return xerror.Wrapf(err, xerror.Normal, "http server close failed")
	}
	return nil
}
