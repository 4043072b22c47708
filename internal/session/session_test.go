package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"edgefinder/internal/advisor"
	"edgefinder/internal/audit"
	"edgefinder/internal/bankroll"
	"edgefinder/internal/catalog"
	"edgefinder/internal/edge"
	"edgefinder/internal/parlay"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestManager(t *testing.T, opts ...advisor.Option) (*Manager, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 2, 24, 19, 0, 0, 0, time.UTC)}
	m := NewManager(
		Deps{Catalog: catalog.NewMemoryStore(), Advisor: advisor.NewResponder(opts...)},
		Config{StartingBalance: decimal.NewFromInt(1000), TTL: time.Hour, Now: c.Now},
	)
	return m, c
}

func TestSetBalance(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	l, n, err := s.SetBalance(decimal.NewFromInt(500))
	if err != nil || n.Level != NoticeSuccess {
		t.Fatalf("SetBalance(500) = (%+v, %v)", n, err)
	}
	if !l.MaxSingleBet.Equal(decimal.NewFromInt(25)) {
		t.Errorf("MaxSingleBet = %s, want 25", l.MaxSingleBet)
	}
	if !l.Starting.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Starting changed to %s", l.Starting)
	}

	_, n, err = s.SetBalance(decimal.NewFromInt(-1))
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, bankroll.ErrInvalidAmount) {
		t.Errorf("SetBalance(-1) err = %v, want ErrInvalidInput wrapping ErrInvalidAmount", err)
	}
	if n.Level != NoticeError {
		t.Errorf("SetBalance(-1) notice = %+v", n)
	}
	if !s.Bankroll().Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance changed on rejected set: %s", s.Bankroll().Balance)
	}
}

func TestAddLegNotices(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	s := m.Create()

	q, n, err := s.AddLeg(ctx, "nba-2", "Spread")
	if err != nil {
		t.Fatalf("AddLeg: %v", err)
	}
	if n.Level != NoticeSuccess || n.Message != "Added: Heat @ Bucks (Spread)" {
		t.Errorf("notice = %+v", n)
	}
	if len(q.Legs) != 1 || q.Legs[0].Odds != "-185" {
		t.Errorf("legs = %+v", q.Legs)
	}

	s.AddLeg(ctx, "nba-3", "Moneyline")
	s.AddLeg(ctx, "nhl-3", "Total (Over)")

	q, n, err = s.AddLeg(ctx, "nba-5", "Spread")
	if err != nil || n.Level != NoticeWarning {
		t.Errorf("4th leg = (%+v, %v), want warning", n, err)
	}
	if n.Message != "3 legs is the recommended max. Adding a 4th is absolute maximum." {
		t.Errorf("warning message = %q", n.Message)
	}
	if len(q.Legs) != 4 || q.Profile != "Long Shot" || q.CombinedOdds != 890 {
		t.Errorf("quote = %d legs %q %d", len(q.Legs), q.Profile, q.CombinedOdds)
	}

	q, n, err = s.AddLeg(ctx, "nba-1", "Spread")
	if !errors.Is(err, parlay.ErrCapacityExceeded) {
		t.Errorf("5th leg err = %v, want ErrCapacityExceeded", err)
	}
	if n.Message != "HARD STOP: Max 4 legs. More is stupid. Remove a leg first." {
		t.Errorf("capacity message = %q", n.Message)
	}
	if len(q.Legs) != 4 {
		t.Errorf("legs after rejected add = %d", len(q.Legs))
	}
}

func TestAddLegRejects(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	s := m.Create()

	if _, _, err := s.AddLeg(ctx, "nba-2", "Teaser"); !errors.Is(err, ErrInvalidInput) || !errors.Is(err, parlay.ErrUnknownBetType) {
		t.Errorf("unknown bet type err = %v", err)
	}
	if _, _, err := s.AddLeg(ctx, "mlb-1", "Spread"); !errors.Is(err, catalog.ErrGameNotFound) {
		t.Errorf("unknown game err = %v", err)
	}
	if len(s.Parlay().Legs) != 0 {
		t.Errorf("legs = %+v, want empty", s.Parlay().Legs)
	}
}

func TestRemoveAndClearLegs(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	s := m.Create()
	s.AddLeg(ctx, "nba-2", "Spread")
	s.AddLeg(ctx, "nba-3", "Spread")

	if _, _, err := s.RemoveLeg(5); !errors.Is(err, parlay.ErrIndexOutOfRange) {
		t.Errorf("RemoveLeg(5) err = %v", err)
	}
	q, n, err := s.RemoveLeg(0)
	if err != nil || len(q.Legs) != 1 || q.Legs[0].GameID != "nba-3" {
		t.Errorf("RemoveLeg(0) = (%+v, %v)", q.Legs, err)
	}
	if n.Message != "Removed: Heat @ Bucks (Spread)" {
		t.Errorf("remove message = %q", n.Message)
	}

	for i := 0; i < 2; i++ {
		q, _ := s.ClearLegs()
		if len(q.Legs) != 0 {
			t.Errorf("ClearLegs #%d left %d legs", i+1, len(q.Legs))
		}
	}
}

func TestLogBet(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	e, n, err := s.LogBet(audit.Entry{
		Description: "Bucks -4 vs Heat",
		BetType:     audit.TypeSpread,
		Grade:       "b",
		Risk:        decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("LogBet: %v", err)
	}
	if e.Result != audit.ResultPending || e.Grade != edge.GradeB || e.Date != "2026-02-24" {
		t.Errorf("logged entry = %+v", e)
	}
	if n.Message != "Logged: Bucks -4 vs Heat | Grade B | $50.00" {
		t.Errorf("notice = %q", n.Message)
	}
	if got := s.Bankroll().DailyRisk; !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("DailyRisk = %s, want 50", got)
	}

	_, n, err = s.LogBet(audit.Entry{Description: "bad", BetType: audit.TypeML, Grade: edge.GradeA, Risk: decimal.NewFromInt(-10)})
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, audit.ErrInvalidEntry) {
		t.Errorf("negative risk err = %v", err)
	}
	if n.Level != NoticeError {
		t.Errorf("notice = %+v", n)
	}

	v := s.Audit()
	if len(v.Entries) != len(audit.SeedLog())+1 {
		t.Errorf("audit has %d entries, want seed + 1", len(v.Entries))
	}
	if got := s.Bankroll().DailyRisk; !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("DailyRisk after rejected log = %s", got)
	}
	if len(v.Weekly) != 8 || len(v.Review) != len(v.Entries) {
		t.Errorf("audit view weekly=%d review=%d", len(v.Weekly), len(v.Review))
	}
}

func TestSelectAndAnalyze(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	s := m.Create()

	if _, ok, _ := s.Selected(ctx); ok {
		t.Error("new session has a selection")
	}
	v, err := s.SelectGame(ctx, "nba-5")
	if err != nil || v.Action.Label != "Full unit" || v.Alignment != "STRONG ALIGNMENT" {
		t.Fatalf("SelectGame = (%+v, %v)", v, err)
	}
	if v.FairLine == nil || v.FairLine.FairA+v.FairLine.FairB < 0.999 {
		t.Errorf("fair line = %+v", v.FairLine)
	}
	if sel, ok, _ := s.Selected(ctx); !ok || sel.ID != "nba-5" {
		t.Errorf("Selected = %q, %v", sel.ID, ok)
	}
	if _, err := s.SelectGame(ctx, "nope"); !errors.Is(err, catalog.ErrGameNotFound) {
		t.Errorf("SelectGame(nope) err = %v", err)
	}

	d, err := s.Analyze(ctx, "nba-2", "I like the Bucks tonight")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if d.Thesis == nil || d.Thesis.Label != "PARTIAL ALIGNMENT" {
		t.Errorf("thesis = %+v", d.Thesis)
	}
	if d.Verdict != "Half unit. Moderate confidence." || !d.MaxRisk.Equal(decimal.NewFromInt(50)) {
		t.Errorf("verdict/max = %q/%s", d.Verdict, d.MaxRisk)
	}
	if d, _ := s.Analyze(ctx, "nba-2", "  "); d.Thesis != nil {
		t.Error("blank thesis should skip the gut check")
	}
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	s := m.Create()

	tr := s.Transcript()
	if len(tr) != 1 || tr[0].Content != advisor.Greeting {
		t.Fatalf("transcript = %+v, want greeting", tr)
	}

	reply, err := s.SubmitChat(ctx, "Run audit")
	if err != nil {
		t.Fatalf("SubmitChat: %v", err)
	}
	if reply.Source != advisor.SourceLocal || !strings.HasPrefix(reply.Text, "**WEEKLY AUDIT**") {
		t.Errorf("reply = %+v", reply)
	}
	tr = s.Transcript()
	if len(tr) != 3 || tr[1].Role != advisor.RoleUser || tr[2].Role != advisor.RoleAssistant {
		t.Errorf("transcript roles = %+v", tr)
	}

	if _, err := s.SubmitChat(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty chat err = %v", err)
	}
	if len(s.Transcript()) != 3 {
		t.Error("empty chat changed the transcript")
	}
}

type countingCompleter struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCompleter) Complete(context.Context, string, []advisor.Message) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return "remote take", nil
}

func TestChatRateLimit(t *testing.T) {
	ctx := context.Background()
	cc := &countingCompleter{}
	c := &clock{t: time.Now()}
	m := NewManager(
		Deps{Catalog: catalog.NewMemoryStore(), Advisor: advisor.NewResponder(advisor.WithCompleter(cc))},
		Config{StartingBalance: decimal.NewFromInt(1000), ChatRatePerMin: 2, Now: c.Now},
	)
	s := m.Create()

	var sources []advisor.Source
	for i := 0; i < 3; i++ {
		r, err := s.SubmitChat(ctx, "thoughts?")
		if err != nil {
			t.Fatal(err)
		}
		sources = append(sources, r.Source)
	}
	if sources[0] != advisor.SourceRemote || sources[1] != advisor.SourceRemote || sources[2] != advisor.SourceLocal {
		t.Errorf("sources = %v, want remote, remote, local", sources)
	}
	if cc.calls != 2 {
		t.Errorf("completer called %d times, want 2", cc.calls)
	}
}

func testEntry(risk int64) audit.Entry {
	return audit.Entry{
		Description: "Knicks -5.5 vs Pacers",
		BetType:     audit.TypeSpread,
		Grade:       edge.GradeA,
		Risk:        decimal.NewFromInt(risk),
	}
}
