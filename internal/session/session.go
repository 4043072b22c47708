package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"edgefinder/internal/advisor"
	"edgefinder/internal/alerts"
	"edgefinder/internal/audit"
	"edgefinder/internal/bankroll"
	"edgefinder/internal/catalog"
	"edgefinder/internal/edge"
	"edgefinder/internal/metrics"
	"edgefinder/internal/parlay"
)

var (
	// ErrInvalidInput wraps every rejected submission.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("session not found")
)

// NoticeLevel is how a UI should present a Notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is the user-facing message an intent produces.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

const (
	msgCapacity    = "HARD STOP: Max 4 legs. More is stupid. Remove a leg first."
	msgSoftWarning = "3 legs is the recommended max. Adding a 4th is absolute maximum."
)

// Deps are the collaborators every session shares. Only Catalog and
// Advisor are required.
type Deps struct {
	Catalog catalog.Store
	Advisor *advisor.Responder
	Alerts  *alerts.Notifier
	Metrics *metrics.Metrics
}

// Session is one user's ledger. Every intent runs under the session mutex.
type Session struct {
	ID string

	mu         sync.Mutex
	deps       *Deps
	bankroll   bankroll.State
	parlay     parlay.Builder
	log        []audit.Entry
	transcript []advisor.Message
	selected   string
	chat       *rate.Limiter
	now        func() time.Time
	lastSeen   time.Time
}

func newSession(id string, starting decimal.Decimal, deps *Deps, chat *rate.Limiter, now func() time.Time) *Session {
	return &Session{
		ID:       id,
		deps:     deps,
		bankroll: bankroll.New(starting),
		chat:     chat,
		now:      now,
		lastSeen: now(),
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) record(intent string, n Notice) {
	outcome := metrics.OutcomeOK
	switch n.Level {
	case NoticeWarning:
		outcome = metrics.OutcomeWarning
	case NoticeError:
		outcome = metrics.OutcomeRejected
	}
	s.deps.Metrics.RecordIntent(intent, outcome)
}

// checkAlerts must be called with s.mu held.
func (s *Session) checkAlerts() {
	if s.deps.Alerts == nil {
		return
	}
	l := s.bankroll.Limits()
	s.deps.Alerts.AlertStopLoss(s.ID, l)
	s.deps.Alerts.AlertExposure(s.ID, l)
}

func rejected(err error) Notice {
	return Notice{Level: NoticeError, Message: err.Error()}
}

// Bankroll returns the current limits read-model.
func (s *Session) Bankroll() bankroll.Limits {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bankroll.Limits()
}

// SetBalance replaces the balance.
func (s *Session) SetBalance(amount decimal.Decimal) (bankroll.Limits, Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bankroll.SetBalance(amount); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
		n := rejected(err)
		s.record("set_balance", n)
		return s.bankroll.Limits(), n, err
	}
	s.checkAlerts()

	n := Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Balance set to $%s", amount.StringFixed(2))}
	s.record("set_balance", n)
	return s.bankroll.Limits(), n, nil
}

// ResetDaily zeroes the day's committed risk.
func (s *Session) ResetDaily() {
	s.mu.Lock()
	s.bankroll.ResetDaily()
	s.mu.Unlock()
}

func (s *Session) quote() parlay.Quote {
	return parlay.NewQuote(s.parlay.Legs(), s.bankroll)
}

// Parlay returns the parlay read-model.
func (s *Session) Parlay() parlay.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote()
}

// AddLeg adds gameID to the parlay. Reaching the 4th leg succeeds with a
// warning notice; a 5th is rejected with parlay.ErrCapacityExceeded.
func (s *Session) AddLeg(ctx context.Context, gameID, betType string) (parlay.Quote, Notice, error) {
	bt, err := parlay.ParseBetType(betType)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
		n := rejected(err)
		s.deps.Metrics.RecordIntent("add_leg", metrics.OutcomeRejected)
		return s.Parlay(), n, err
	}
	g, err := s.deps.Catalog.Game(ctx, gameID)
	if err != nil {
		n := rejected(err)
		s.deps.Metrics.RecordIntent("add_leg", metrics.OutcomeRejected)
		return s.Parlay(), n, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, warning, err := s.parlay.Add(g, bt)
	var n Notice
	switch {
	case errors.Is(err, parlay.ErrCapacityExceeded):
		n = Notice{Level: NoticeError, Message: msgCapacity}
	case err != nil:
		n = rejected(err)
	case warning != nil:
		n = Notice{Level: NoticeWarning, Message: msgSoftWarning}
	default:
		n = Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Added: %s (%s)", g.Label(), bt)}
	}
	s.record("add_leg", n)
	return s.quote(), n, err
}

// RemoveLeg removes the leg at index.
func (s *Session) RemoveLeg(index int) (parlay.Quote, Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leg, err := s.parlay.Remove(index)
	if err != nil {
		n := rejected(err)
		s.record("remove_leg", n)
		return s.quote(), n, err
	}
	n := Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Removed: %s (%s)", leg.Game, leg.BetType)}
	s.record("remove_leg", n)
	return s.quote(), n, nil
}

// ClearLegs empties the parlay. It always succeeds.
func (s *Session) ClearLegs() (parlay.Quote, Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parlay.Clear()
	n := Notice{Level: NoticeSuccess, Message: "Parlay cleared."}
	s.record("clear_legs", n)
	return s.quote(), n
}

// LogBet appends e to the session log and commits its risk against the
// day. A rejected entry changes nothing.
func (s *Session) LogBet(e audit.Entry) (audit.Entry, Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Description = strings.TrimSpace(e.Description)
	if e.Result == "" {
		e.Result = audit.ResultPending
	}
	if g, ok := edge.ParseGrade(string(e.Grade)); ok {
		e.Grade = g
	}
	if e.Date == "" {
		e.Date = s.now().Format(time.DateOnly)
	}

	if err := e.Validate(); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
		n := rejected(err)
		s.record("log_bet", n)
		return audit.Entry{}, n, err
	}
	if err := s.bankroll.Commit(e.Risk); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
		n := rejected(err)
		s.record("log_bet", n)
		return audit.Entry{}, n, err
	}
	s.log = append(s.log, e)
	s.checkAlerts()

	n := Notice{
		Level:   NoticeSuccess,
		Message: fmt.Sprintf("Logged: %s | Grade %s | $%s", e.Description, e.Grade, e.Risk.StringFixed(2)),
	}
	s.record("log_bet", n)
	return e, n, nil
}

// Audit summarizes the demo seed log followed by this session's log.
func (s *Session) Audit() AuditView {
	s.mu.Lock()
	entries := append(audit.SeedLog(), s.log...)
	s.mu.Unlock()

	return AuditView{
		Summary: audit.Summarize(entries),
		Entries: entries,
		Review:  audit.Review(entries),
		Weekly:  audit.WeeklyPL(),
	}
}

// SelectGame marks id as the slate's selected game.
func (s *Session) SelectGame(ctx context.Context, id string) (GameView, error) {
	g, err := s.deps.Catalog.Game(ctx, id)
	if err != nil {
		s.deps.Metrics.RecordIntent("select_game", metrics.OutcomeRejected)
		return GameView{}, err
	}

	s.mu.Lock()
	s.selected = g.ID
	s.mu.Unlock()

	s.deps.Metrics.RecordIntent("select_game", metrics.OutcomeOK)
	return NewGameView(g), nil
}

// Selected returns the selected game, if any.
func (s *Session) Selected(ctx context.Context) (GameView, bool, error) {
	s.mu.Lock()
	id := s.selected
	s.mu.Unlock()

	if id == "" {
		return GameView{}, false, nil
	}
	g, err := s.deps.Catalog.Game(ctx, id)
	if err != nil {
		return GameView{}, false, err
	}
	return NewGameView(g), true, nil
}

// Analyze runs the deep dive on id. An empty thesis skips the gut check.
func (s *Session) Analyze(ctx context.Context, id, thesis string) (DeepDive, error) {
	g, err := s.deps.Catalog.Game(ctx, id)
	if err != nil {
		s.deps.Metrics.RecordIntent("analyze", metrics.OutcomeRejected)
		return DeepDive{}, err
	}

	s.mu.Lock()
	balance := s.bankroll.Balance
	s.mu.Unlock()

	d := DeepDive{
		Game:    NewGameView(g),
		Verdict: edge.Recommend(g.Grade).Verdict,
		MaxRisk: bankroll.MaxSingleBet(balance),
	}
	if thesis = strings.TrimSpace(thesis); thesis != "" {
		c := edge.CheckThesis(thesis, g.Gut)
		d.Thesis = &c
	}
	s.deps.Metrics.RecordIntent("analyze", metrics.OutcomeOK)
	return d, nil
}

// Transcript returns the chat so far, seeding the greeting on first use.
func (s *Session) Transcript() []advisor.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedTranscript()
	return append([]advisor.Message(nil), s.transcript...)
}

func (s *Session) seedTranscript() {
	if len(s.transcript) == 0 {
		s.transcript = append(s.transcript, advisor.Message{Role: advisor.RoleAssistant, Content: advisor.Greeting})
	}
}

// SubmitChat appends text and the advisor's reply to the transcript. The
// session lock is released while the advisor runs. Over the chat rate the
// reply is always local.
func (s *Session) SubmitChat(ctx context.Context, text string) (advisor.Reply, error) {
	if strings.TrimSpace(text) == "" {
		s.deps.Metrics.RecordIntent("submit_chat", metrics.OutcomeRejected)
		return advisor.Reply{}, fmt.Errorf("%w: message is empty", ErrInvalidInput)
	}

	s.mu.Lock()
	s.seedTranscript()
	history := append([]advisor.Message(nil), s.transcript...)
	s.transcript = append(s.transcript, advisor.Message{Role: advisor.RoleUser, Content: text})
	allowed := s.chat == nil || s.chat.Allow()
	s.mu.Unlock()

	var reply advisor.Reply
	if allowed {
		reply = s.deps.Advisor.Respond(ctx, text, history)
	} else {
		reply = s.deps.Advisor.Answer(text)
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, advisor.Message{Role: advisor.RoleAssistant, Content: reply.Text})
	s.mu.Unlock()

	s.deps.Metrics.RecordIntent("submit_chat", metrics.OutcomeOK)
	return reply, nil
}

// Snapshot builds the dashboard read-model.
func (s *Session) Snapshot(ctx context.Context) (Dashboard, error) {
	sel, ok, err := s.Selected(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := Dashboard{
		ID:         s.ID,
		Bankroll:   s.bankroll.Limits(),
		Parlay:     s.quote(),
		BetsLogged: len(s.log),
		Messages:   len(s.transcript),
		LiveChat:   s.deps.Advisor.Remote(),
	}
	if ok {
		d.Selected = &sel
	}
	return d, nil
}
