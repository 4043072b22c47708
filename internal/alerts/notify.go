package alerts

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"edgefinder/internal/bankroll"
	"edgefinder/internal/metrics"
)

// Alert types, used as metric labels.
const (
	TypeStopLoss = "stop_loss"
	TypeExposure = "exposure_breach"
	TypeFallback = "advisor_fallback"
)

// Notifier logs ledger alerts, deduplicated per key within a cooldown
type Notifier struct {
	mu         sync.Mutex
	lastAlerts map[string]time.Time
	cooldown   time.Duration
	log        *zap.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewNotifier creates a new notifier. log and m may be nil.
func NewNotifier(cooldown time.Duration, log *zap.Logger, m *metrics.Metrics) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		lastAlerts: make(map[string]time.Time),
		cooldown:   cooldown,
		log:        log,
		metrics:    m,
		now:        time.Now,
	}
}

// checkCooldown reports whether key fired within the cooldown, and records
// it as fired now when it did not.
func (n *Notifier) checkCooldown(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	if last, ok := n.lastAlerts[key]; ok && now.Sub(last) < n.cooldown {
		return true
	}
	n.lastAlerts[key] = now
	return false
}

// AlertStopLoss warns that a session's loss reached its stop-loss. It
// reports whether the alert was raised.
func (n *Notifier) AlertStopLoss(sessionID string, l bankroll.Limits) bool {
	if l.StopLossTier != bankroll.StopLossTriggered {
		return false
	}
	if n.checkCooldown(TypeStopLoss + "-" + sessionID) {
		return false
	}

	n.metrics.RecordAlert(TypeStopLoss)
	n.log.Warn("stop-loss triggered",
		zap.String("session", sessionID),
		zap.String("net_pl", l.NetPL.StringFixed(2)),
		zap.String("stop_loss", l.StopLossAmount.StringFixed(2)),
		zap.String("balance", l.Balance.StringFixed(2)),
	)
	return true
}

// AlertExposure warns when daily risk crosses into the breach tier.
func (n *Notifier) AlertExposure(sessionID string, l bankroll.Limits) bool {
	if l.ExposureTier != bankroll.ExposureBreach {
		return false
	}
	if n.checkCooldown(TypeExposure + "-" + sessionID) {
		return false
	}

	n.metrics.RecordAlert(TypeExposure)
	n.log.Warn("daily exposure breach",
		zap.String("session", sessionID),
		zap.Float64("exposure_pct", l.ExposurePct),
		zap.String("daily_risk", l.DailyRisk.StringFixed(2)),
		zap.String("max_daily_risk", l.MaxDailyRisk.StringFixed(2)),
	)
	return true
}

// AlertFallback notes that the remote advisor failed and canned replies
// were served instead.
func (n *Notifier) AlertFallback(err error) bool {
	if n.checkCooldown(TypeFallback) {
		return false
	}

	n.metrics.RecordAlert(TypeFallback)
	n.log.Warn("advisor unavailable, serving local replies", zap.Error(err))
	return true
}

// CleanupOldAlerts removes stale alert records
func (n *Notifier) CleanupOldAlerts() {
	n.mu.Lock()
	defer n.mu.Unlock()
	cutoff := n.now().Add(-1 * time.Hour)
	for key, t := range n.lastAlerts {
		if t.Before(cutoff) {
			delete(n.lastAlerts, key)
		}
	}
}
