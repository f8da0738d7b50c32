package goldtrack

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"
)

// Side tells where a price sits relative to the alarm target.
type Side string

const (
	SideAbove Side = "ABOVE"
	SideBelow Side = "BELOW"
)

func sideOf(price, target float64) Side {
	if price >= target {
		return SideAbove
	}
	return SideBelow
}

// AlarmConfig is the singleton persisted alarm definition. It is mutated by
// user edits and by the engine's own edge-detection side effects (lastSide,
// lastNotifiedAt, and active when a one-shot alarm fires).
type AlarmConfig struct {
	Active         bool       `json:"active"`
	Target         float64    `json:"target,omitempty"`
	Direction      Side       `json:"direction"`
	Repeat         bool       `json:"repeat"`
	LastSide       Side       `json:"lastSide,omitempty"`
	LastNotifiedAt *time.Time `json:"lastNotifiedAt,omitempty"`
}

// DefaultAlarmConfig is the documented value substituted when no alarm has
// ever been saved, or the persisted record is malformed.
func DefaultAlarmConfig() AlarmConfig {
	return AlarmConfig{Active: false, Direction: SideAbove, Repeat: true}
}

// Status returns a one-line human description of the alarm.
func (a AlarmConfig) Status() string {
	if !a.Active || a.Target <= 0 {
		return "alarm off"
	}
	dir := "rises above"
	if a.Direction == SideBelow {
		dir = "drops below"
	}
	mode := "repeating"
	if !a.Repeat {
		mode = "one-shot"
	}
	return fmt.Sprintf("alarm armed: fires when the gram price %s %s (%s)", dir, TRY(a.Target), mode)
}

// AlarmEngine persists the alarm configuration and performs edge detection
// against each newly resolved price.
//
// The engine is edge-triggered, not level-triggered: a sustained price above
// or below the target fires at most once per crossing, never repeatedly
// while stationary.
type AlarmEngine struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

// NewAlarmEngine creates the engine over the given store and notifier.
func NewAlarmEngine(store Store, notifier Notifier) *AlarmEngine {
	return &AlarmEngine{store: store, notifier: notifier, now: time.Now}
}

// Config loads the persisted alarm configuration. An absent or malformed
// record yields the documented default, never an error.
func (e *AlarmEngine) Config(ctx context.Context) AlarmConfig {
	raw, ok, err := e.store.Get(ctx, KeyAlarmConfig)
	if err != nil {
		log.Printf("alarm config read err (using default): %v", err)
		return DefaultAlarmConfig()
	}
	if !ok {
		return DefaultAlarmConfig()
	}
	cfg := DefaultAlarmConfig()
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("malformed alarm config (using default): %v", err)
		return DefaultAlarmConfig()
	}
	if cfg.Direction != SideAbove && cfg.Direction != SideBelow {
		cfg.Direction = SideAbove
	}
	return cfg
}

// Save persists the configuration, replacing the previous record.
func (e *AlarmEngine) Save(ctx context.Context, cfg AlarmConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not encode alarm config: %w", err)
	}
	return e.store.Set(ctx, KeyAlarmConfig, string(raw))
}

// Arm activates the alarm for the given target and direction. When the
// current price is known (lastPrice > 0) the baseline side is seeded from
// it, so a price already past the target does not fire on the next tick;
// otherwise the first observed price establishes the baseline without
// firing.
func (e *AlarmEngine) Arm(ctx context.Context, target float64, direction Side, repeat bool, lastPrice float64) error {
	if !(target > 0) || math.IsInf(target, 0) {
		return fmt.Errorf("alarm target must be a positive price, got %v", target)
	}
	if direction != SideAbove && direction != SideBelow {
		return fmt.Errorf("alarm direction must be %s or %s, got %q", SideAbove, SideBelow, direction)
	}
	cfg := e.Config(ctx)
	cfg.Active = true
	cfg.Target = target
	cfg.Direction = direction
	cfg.Repeat = repeat
	cfg.LastSide = ""
	if lastPrice > 0 {
		cfg.LastSide = sideOf(lastPrice, target)
	}
	return e.Save(ctx, cfg)
}

// Disable deactivates the alarm, keeping target and direction for a later
// re-arm.
func (e *AlarmEngine) Disable(ctx context.Context) error {
	cfg := e.Config(ctx)
	cfg.Active = false
	return e.Save(ctx, cfg)
}

// Check runs edge detection for a newly resolved gram price and reports
// whether a notification fired. State is persisted on every branch that
// mutates it.
func (e *AlarmEngine) Check(ctx context.Context, gramPrice float64) (fired bool, err error) {
	cfg := e.Config(ctx)
	if !cfg.Active || cfg.Target <= 0 || !(gramPrice > 0) {
		return false, nil
	}

	side := sideOf(gramPrice, cfg.Target)

	// First observation since activation or restart: establish the
	// baseline, do not fire.
	if cfg.LastSide == "" {
		cfg.LastSide = side
		return false, e.Save(ctx, cfg)
	}
	if side == cfg.LastSide {
		return false, nil
	}

	// A crossing occurred. It fires only in the armed direction; the
	// opposite crossing just moves the baseline.
	armed := (cfg.Direction == SideAbove && side == SideAbove) ||
		(cfg.Direction == SideBelow && side == SideBelow)
	cfg.LastSide = side
	if !armed {
		return false, e.Save(ctx, cfg)
	}

	now := e.now().UTC()
	cfg.LastNotifiedAt = &now
	if !cfg.Repeat {
		// one-shot consumed
		cfg.Active = false
	}
	title := "Gold price alarm"
	body := fmt.Sprintf("gram gold is now %s (target: %s)", TRY(gramPrice), TRY(cfg.Target))
	if nerr := e.notifier.Notify(title, body); nerr != nil {
		log.Printf("alarm notification err (state still updated): %v", nerr)
	}
	return true, e.Save(ctx, cfg)
}
