package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/labels"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
	"github.com/ThatOtherAndrew/Glyphcast/internal/templates"
)

type Options struct {
	// Threshold is the accuracy at or above which a result is a match.
	Threshold float64
	Metric    gestures.Metric
	// Library is imported into every new session.
	Library models.Snapshot
	// Builtin seeds sessions with the default templates scaled to the surface.
	Builtin       bool
	SurfaceWidth  float64
	SurfaceHeight float64
	// AllowedOrigins lists browser origins accepted besides the server's own
	// host. Requests without an Origin header are always accepted.
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Server gives every WebSocket connection its own recognizer. Messages of
// one connection are handled in order.
type Server struct {
	opts     Options
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = gestures.Logger()
	}
	s := &Server{opts: opts, logger: logger}
	s.upgrader = websocket.Upgrader{
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin:      s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range s.opts.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	s.logger.Warn("origin rejected", "origin", origin, "remote", r.RemoteAddr)
	return false
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type session struct {
	id       uuid.UUID
	rec      *gestures.Recognizer
	recorder *gestures.Recorder
	// training holds the samples sent with train, by label
	training map[string][]models.Stroke
	logger   *slog.Logger
}

func (s *Server) newSession() (*session, error) {
	id := uuid.New()
	logger := s.logger.With("session", id.String())
	rec := gestures.New(gestures.WithMetric(s.opts.Metric), gestures.WithLogger(logger))
	if len(s.opts.Library) > 0 {
		if err := rec.Import(s.opts.Library); err != nil {
			return nil, errors.Wrap(err, "import library")
		}
	}
	if s.opts.Builtin {
		if err := templates.Seed(rec, s.opts.SurfaceWidth, s.opts.SurfaceHeight); err != nil {
			return nil, errors.Wrap(err, "seed templates")
		}
	}
	return &session{
		id:       id,
		rec:      rec,
		recorder: gestures.NewRecorder(),
		training: make(map[string][]models.Stroke),
		logger:   logger,
	}, nil
}

// stroke returns the points of req, or takes the recorder's samples when
// req carries none.
func (sess *session) stroke(req Request) models.Stroke {
	if len(req.Points) > 0 {
		return req.Points
	}
	points := sess.recorder.Points()
	sess.recorder.Reset()
	return points
}

// train registers points as the next training variant of label and returns
// the template name it was stored under.
func (sess *session) train(label string, points models.Stroke) (string, error) {
	if label == "" {
		return "", errors.New("train needs a name")
	}
	name := labels.Train(label, len(sess.training[label])+1)
	if err := sess.rec.AddGesture(name, points); err != nil {
		return "", err
	}
	sess.training[label] = append(sess.training[label], points)
	return name, nil
}

// commit replaces the library with the training samples, stored as
// "<label>-<i>".
func (sess *session) commit() error {
	if len(sess.training) == 0 {
		return errors.New("no training samples to commit")
	}
	snap := make(models.Snapshot)
	for label, samples := range sess.training {
		for i, points := range samples {
			snap[labels.Variant(label, i)] = []models.Stroke{points}
		}
	}
	if err := sess.rec.Import(snap); err != nil {
		return err
	}
	sess.training = make(map[string][]models.Stroke)
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		s.logger.Error("failed to create session", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	sess.logger.Info("session opened", "remote", r.RemoteAddr, "templates", sess.rec.TemplateCount())
	if err := conn.WriteJSON(s.reply(sess, Request{Type: TypeHello})); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.Warn("session read failed", "err", err)
			}
			sess.logger.Info("session closed")
			return
		}

		var req Request
		var resp Response
		if err := json.Unmarshal(data, &req); err != nil {
			resp = sess.fail(req, errors.Wrap(err, "decode request"))
		} else {
			resp = s.handle(sess, req)
		}
		if err := conn.WriteJSON(resp); err != nil {
			sess.logger.Warn("session write failed", "err", err)
			return
		}
	}
}

func (s *Server) handle(sess *session, req Request) Response {
	switch req.Type {
	case TypeAdd:
		if err := sess.rec.AddGesture(req.Name, sess.stroke(req)); err != nil {
			return sess.fail(req, err)
		}
	case TypeRecognize:
		res := sess.rec.Recognize(sess.stroke(req))
		resp := s.reply(sess, req)
		resp.Result = newResult(res, sess.rec.Metric(), s.opts.Threshold)
		return resp
	case TypePoint:
		for _, p := range req.Points {
			sess.recorder.Add(p.X, p.Y)
		}
	case TypeLift:
		sess.recorder.Lift()
	case TypeTrain:
		name, err := sess.train(req.Name, sess.stroke(req))
		if err != nil {
			return sess.fail(req, err)
		}
		resp := s.reply(sess, req)
		resp.Name = name
		return resp
	case TypeCommit:
		if err := sess.commit(); err != nil {
			return sess.fail(req, err)
		}
	case TypeClear:
		sess.rec.Clear()
		sess.training = make(map[string][]models.Stroke)
	case TypeImport:
		if err := sess.rec.Import(req.Library); err != nil {
			return sess.fail(req, err)
		}
	case TypeList, TypeExport:
	default:
		return sess.fail(req, fmt.Errorf("unknown message type: %q", req.Type))
	}
	return s.reply(sess, req)
}

func (s *Server) reply(sess *session, req Request) Response {
	resp := Response{
		Type:     req.Type,
		ID:       req.ID,
		Session:  sess.id.String(),
		Count:    sess.rec.TemplateCount(),
		Captured: sess.recorder.Len(),
	}
	switch req.Type {
	case TypeHello, TypeList, TypeImport, TypeCommit:
		resp.Names = sess.rec.Names()
	case TypeExport:
		resp.Library = sess.rec.Export()
	}
	return resp
}

func (sess *session) fail(req Request, err error) Response {
	sess.logger.Debug("request failed", "type", req.Type, "err", err)
	return Response{
		Type:     TypeError,
		ID:       req.ID,
		Session:  sess.id.String(),
		Count:    sess.rec.TemplateCount(),
		Captured: sess.recorder.Len(),
		Error:    err.Error(),
	}
}
