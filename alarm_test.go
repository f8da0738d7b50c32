package goldtrack

import (
	"context"
	"testing"
	"time"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	titles []string
	bodies []string
}

func (n *recordingNotifier) RequestPermission() bool { return true }
func (n *recordingNotifier) Notify(title, body string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return nil
}

func newTestEngine(t *testing.T) (*AlarmEngine, *MemStore, *recordingNotifier) {
	t.Helper()
	store := NewMemStore()
	notifier := &recordingNotifier{}
	engine := NewAlarmEngine(store, notifier)
	engine.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return engine, store, notifier
}

func TestAlarmEngine_EdgeTriggered(t *testing.T) {
	// target=100, direction=ABOVE, repeat=false, prices [90 95 105 110 95]:
	// baseline at 90, one fire at 105, then the one-shot is consumed.
	ctx := context.Background()
	engine, _, notifier := newTestEngine(t)
	if err := engine.Arm(ctx, 100, SideAbove, false, 0); err != nil {
		t.Fatalf("arm failed: %v", err)
	}

	wantFired := []bool{false, false, true, false, false}
	for i, price := range []float64{90, 95, 105, 110, 95} {
		fired, err := engine.Check(ctx, price)
		if err != nil {
			t.Fatalf("check(%v) failed: %v", price, err)
		}
		if fired != wantFired[i] {
			t.Errorf("check(%v) fired = %v, want %v", price, fired, wantFired[i])
		}
	}
	if len(notifier.titles) != 1 {
		t.Fatalf("notified %d times, want exactly once", len(notifier.titles))
	}

	cfg := engine.Config(ctx)
	if cfg.Active {
		t.Error("one-shot alarm still active after firing")
	}
	if cfg.LastNotifiedAt == nil {
		t.Error("lastNotifiedAt not recorded")
	}
}

func TestAlarmEngine_Transitions(t *testing.T) {
	// All four (lastSide, side) combinations, both directions.
	testCases := []struct {
		name      string
		direction Side
		lastSide  Side
		price     float64 // target is always 100
		wantFire  bool
		wantSide  Side
	}{
		{"above stays above", SideAbove, SideAbove, 120, false, SideAbove},
		{"below stays below", SideAbove, SideBelow, 80, false, SideBelow},
		{"armed crossing below to above", SideAbove, SideBelow, 120, true, SideAbove},
		{"unarmed crossing above to below", SideAbove, SideAbove, 80, false, SideBelow},
		{"armed crossing above to below", SideBelow, SideAbove, 80, true, SideBelow},
		{"unarmed crossing below to above", SideBelow, SideBelow, 120, false, SideAbove},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			engine, _, notifier := newTestEngine(t)
			if err := engine.Save(ctx, AlarmConfig{
				Active:    true,
				Target:    100,
				Direction: tc.direction,
				Repeat:    true,
				LastSide:  tc.lastSide,
			}); err != nil {
				t.Fatalf("save failed: %v", err)
			}

			fired, err := engine.Check(ctx, tc.price)
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if fired != tc.wantFire {
				t.Errorf("fired = %v, want %v", fired, tc.wantFire)
			}
			if got := len(notifier.titles) > 0; got != tc.wantFire {
				t.Errorf("notified = %v, want %v", got, tc.wantFire)
			}
			if cfg := engine.Config(ctx); cfg.LastSide != tc.wantSide {
				t.Errorf("lastSide = %q, want %q", cfg.LastSide, tc.wantSide)
			}
		})
	}
}

func TestAlarmEngine_RepeatingAlarm(t *testing.T) {
	ctx := context.Background()
	engine, _, notifier := newTestEngine(t)
	if err := engine.Arm(ctx, 100, SideAbove, true, 0); err != nil {
		t.Fatalf("arm failed: %v", err)
	}

	// Two full down-up cycles fire twice; the plateau in between does not.
	for _, price := range []float64{90, 105, 106, 95, 104} {
		if _, err := engine.Check(ctx, price); err != nil {
			t.Fatalf("check(%v) failed: %v", price, err)
		}
	}
	if len(notifier.titles) != 2 {
		t.Errorf("notified %d times, want 2", len(notifier.titles))
	}
	if cfg := engine.Config(ctx); !cfg.Active {
		t.Error("repeating alarm deactivated itself")
	}
}

func TestAlarmEngine_ArmSeedsBaseline(t *testing.T) {
	// Arming while the price is already past the target must not fire on
	// the next observation on the same side.
	ctx := context.Background()
	engine, _, notifier := newTestEngine(t)
	if err := engine.Arm(ctx, 100, SideAbove, true, 130); err != nil {
		t.Fatalf("arm failed: %v", err)
	}

	fired, err := engine.Check(ctx, 135)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if fired || len(notifier.titles) != 0 {
		t.Error("alarm fired without a crossing")
	}
}

func TestAlarmEngine_InactiveIsNoOp(t *testing.T) {
	ctx := context.Background()
	engine, store, notifier := newTestEngine(t)

	fired, err := engine.Check(ctx, 500)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if fired || len(notifier.titles) != 0 {
		t.Error("inactive alarm fired")
	}
	// The no-op branch must not have persisted anything either.
	if _, ok, _ := store.Get(ctx, KeyAlarmConfig); ok {
		t.Error("no-op check persisted alarm state")
	}
}

func TestAlarmEngine_MalformedConfigFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine(t)
	if err := store.Set(ctx, KeyAlarmConfig, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cfg := engine.Config(ctx)
	want := DefaultAlarmConfig()
	if cfg.Active != want.Active || cfg.Direction != want.Direction || cfg.Repeat != want.Repeat {
		t.Errorf("config = %+v, want default %+v", cfg, want)
	}
}

func TestAlarmEngine_DisableKeepsTarget(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := newTestEngine(t)
	if err := engine.Arm(ctx, 4800, SideBelow, false, 0); err != nil {
		t.Fatalf("arm failed: %v", err)
	}
	if err := engine.Disable(ctx); err != nil {
		t.Fatalf("disable failed: %v", err)
	}

	cfg := engine.Config(ctx)
	if cfg.Active {
		t.Error("alarm still active after disable")
	}
	if cfg.Target != 4800 || cfg.Direction != SideBelow {
		t.Errorf("disable dropped target/direction: %+v", cfg)
	}
}
