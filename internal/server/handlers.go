package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"edgefinder/internal/audit"
	"edgefinder/internal/catalog"
	"edgefinder/internal/session"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	sessions *session.Manager
	catalog  catalog.Store
	log      *zap.Logger
}

type ctxKey struct{}

func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sessions.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			respondError(w, statusFor(err), err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, s)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	return r.Context().Value(ctxKey{}).(*session.Session)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request: %v", session.ErrInvalidInput, err)
	}
	return nil
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"service":  "edgefinder",
		"sessions": h.sessions.Len(),
	})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"sports": catalog.Sports()})
}

// ListGames returns the slate for ?sport=, or the analyzer board when no
// sport is given.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	sport := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("sport")))

	var (
		games []catalog.Game
		err   error
	)
	if sport == "" {
		games, err = h.catalog.AllGames(r.Context())
	} else {
		games, err = h.catalog.GamesFor(r.Context(), sport)
	}
	if err != nil {
		h.log.Error("list games", zap.String("sport", sport), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	resp := map[string]any{"sport": sport, "games": session.GameViews(games)}
	for _, info := range catalog.Sports() {
		if info.Sport == sport {
			resp["info"] = info
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.catalog.Game(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, session.NewGameView(g))
}

// FilterProps matches ?q= against player names within ?sport= (default All).
func (h *Handler) FilterProps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sport := q.Get("sport")
	if sport == "" || strings.EqualFold(sport, catalog.AllSports) {
		sport = catalog.AllSports
	} else {
		sport = strings.ToUpper(sport)
	}

	props, err := h.catalog.FilterProps(r.Context(), q.Get("q"), sport)
	if err != nil {
		h.log.Error("filter props", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	if props == nil {
		props = []catalog.Prop{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"props": props})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	d, err := s.Snapshot(r.Context())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, d)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	d, err := sessionFrom(r).Snapshot(r.Context())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *Handler) GetBankroll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionFrom(r).Bankroll())
}

type balanceRequest struct {
	Balance *decimal.Decimal `json:"balance"`
}

func (h *Handler) SetBalance(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if err := decode(r, &req); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	if req.Balance == nil {
		respondError(w, http.StatusBadRequest, "balance is required")
		return
	}

	l, n, err := sessionFrom(r).SetBalance(*req.Balance)
	if err != nil {
		respondRejected(w, err, n)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"bankroll": l, "notice": n})
}

type gameRequest struct {
	GameID  string `json:"game_id"`
	Thesis  string `json:"thesis"`
	BetType string `json:"bet_type"`
}

func (h *Handler) SelectGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decode(r, &req); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	v, err := sessionFrom(r).SelectGame(r.Context(), req.GameID)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decode(r, &req); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	d, err := sessionFrom(r).Analyze(r.Context(), req.GameID, req.Thesis)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *Handler) GetParlay(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionFrom(r).Parlay())
}

func (h *Handler) AddLeg(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decode(r, &req); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	q, n, err := sessionFrom(r).AddLeg(r.Context(), req.GameID, req.BetType)
	if err != nil {
		respondRejected(w, err, n)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"parlay": q, "notice": n})
}

func (h *Handler) RemoveLeg(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "leg index must be an integer")
		return
	}
	q, n, err := sessionFrom(r).RemoveLeg(i)
	if err != nil {
		respondRejected(w, err, n)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"parlay": q, "notice": n})
}

func (h *Handler) ClearLegs(w http.ResponseWriter, r *http.Request) {
	q, n := sessionFrom(r).ClearLegs()
	respondJSON(w, http.StatusOK, map[string]any{"parlay": q, "notice": n})
}

func (h *Handler) GetAudit(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionFrom(r).Audit())
}

func (h *Handler) LogBet(w http.ResponseWriter, r *http.Request) {
	var e audit.Entry
	if err := decode(r, &e); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	logged, n, err := sessionFrom(r).LogBet(e)
	if err != nil {
		respondRejected(w, err, n)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"entry": logged, "notice": n})
}

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"messages": sessionFrom(r).Transcript()})
}

type chatRequest struct {
	Text string `json:"text"`
}

func (h *Handler) SubmitChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	reply, err := sessionFrom(r).SubmitChat(r.Context(), req.Text)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reply": reply})
}
