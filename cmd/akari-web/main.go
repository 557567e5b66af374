package main

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	httpadapter "svw.info/akari/internal/adapters/http"
	"svw.info/akari/internal/config"
	"svw.info/akari/internal/hint"
	"svw.info/akari/internal/infrastructure/library"
	"svw.info/akari/internal/ports"
	"svw.info/akari/internal/solver"
	"svw.info/akari/internal/usecase"
	"svw.info/akari/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Hijack passes the connection through for the websocket stream.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijacking not supported")
	}
	return hj.Hijack()
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadDotEnv(); err != nil {
		logger.WithError(err).Warn("could not read .env")
	}
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if err != nil {
		logger.WithError(err).Fatal("bad configuration")
	}
	logger.SetLevel(cfg.LogLevel)
	gotext.Configure(cfg.Locales, cfg.Language, "default")

	// Choose solver: SAT by default, backtracking via flag.
	var s ports.Solver
	switch cfg.Solver {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewSATSolver()
	}

	// Wire providers → use cases → HTTP adapter
	uc, err := usecase.NewService(library.Builtin(), s, validator.New(), hint.NewSingles(),
		usecase.WithLogger(logger.WithField("component", "session")))
	if err != nil {
		logger.WithError(err).Fatal("could not start session")
	}
	h := httpadapter.New(uc, logger.WithField("component", "http"))
	defer h.Close()

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"solver":  cfg.Solver,
		"puzzles": uc.PuzzleCount(),
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("server error")
		os.Exit(1)
	}
}
