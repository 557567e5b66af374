package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/ports"
	"svw.info/akari/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log logrus.FieldLogger

	hub *hub
	sub domain.Subscription
}

// New wires a handler to the session and starts forwarding state changes
// to stream clients.
func New(uc *usecase.Service, log logrus.FieldLogger) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	h := &Handler{UC: uc, Log: log, hub: newHub()}
	h.sub = uc.Subscribe(func(s usecase.Snapshot) { h.hub.broadcast(present(s)) })
	return h
}

// Close stops forwarding state changes.
func (h *Handler) Close() { h.UC.Unsubscribe(h.sub) }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/lamp", h.handleLamp)
	mux.HandleFunc("/api/reset", h.handleReset)
	mux.HandleFunc("/api/puzzle", h.handlePuzzle)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/stream", h.handleStream)
}

type errorResp struct {
	Error string `json:"error"`
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrInvalidCellKind),
		errors.Is(err, domain.ErrNoLampPresent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrUnsolvable), errors.Is(err, usecase.ErrStale):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.Log.WithError(err).Error("request failed")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResp{Error: err.Error()})
}

// allow sets the JSON content type and rejects other methods.
func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != method {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// decode reads an optional JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON: " + err.Error())
	}
	return nil
}

// ---- State ----

type stateResp struct {
	usecase.Snapshot
	Message string `json:"message"`
}

func present(s usecase.Snapshot) stateResp {
	return stateResp{Snapshot: s, Message: statusMessage(s)}
}

func (h *Handler) state() stateResp { return present(h.UC.Snapshot()) }

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	_ = json.NewEncoder(w).Encode(h.state())
}

// ---- Lamp ----

type lampReq struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Action string `json:"action,omitempty"`
}

func (h *Handler) handleLamp(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req lampReq
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	var err error
	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "place":
		err = h.UC.PlaceLamp(req.Row, req.Col)
	case "remove":
		err = h.UC.RemoveLamp(req.Row, req.Col)
	case "", "toggle":
		err = h.UC.ClickCell(req.Row, req.Col)
	default:
		h.fail(w, http.StatusBadRequest, errors.New("unknown action "+req.Action))
		return
	}
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	_ = json.NewEncoder(w).Encode(h.state())
}

// ---- Reset ----

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	h.UC.Reset()
	_ = json.NewEncoder(w).Encode(h.state())
}

// ---- Puzzle selection ----

type puzzleReq struct {
	Index *int   `json:"index,omitempty"`
	Move  string `json:"move,omitempty"`
}

func (h *Handler) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req puzzleReq
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	var err error
	switch {
	case req.Index != nil:
		err = h.UC.SetActiveIndex(*req.Index)
	case req.Move == "next":
		err = h.UC.NextPuzzle()
	case req.Move == "prev":
		err = h.UC.PrevPuzzle()
	case req.Move == "random":
		err = h.UC.RandomPuzzle()
	default:
		h.fail(w, http.StatusBadRequest, errors.New("missing index or move"))
		return
	}
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	_ = json.NewEncoder(w).Encode(h.state())
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	hh, ok, err := h.UC.Hint(r.Context())
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Validate ----

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	rep, err := h.UC.Validate(r.Context())
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	_ = json.NewEncoder(w).Encode(rep)
}

// ---- Solve ----

type solveReq struct {
	Apply bool `json:"apply,omitempty"`
}

type solveResp struct {
	Lamps      []domain.Position `json:"lamps"`
	Applied    bool              `json:"applied,omitempty"`
	DurationMs int64             `json:"durationMs"`
	Nodes      int               `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req solveReq
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	solve := h.UC.Solve
	if req.Apply {
		solve = h.UC.ApplySolution
	}
	lamps, st, err := solve(r.Context())
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Lamps:      lamps,
		Applied:    req.Apply,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}
