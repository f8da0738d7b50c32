package goldtrack

import (
	"bytes"
	"strings"
	"testing"
)

func TestToastNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := ToastNotifier{W: &buf}

	if n.RequestPermission() {
		t.Error("toast notifier claims system-level delivery")
	}
	if err := n.Notify("Gold price alarm", "gram gold is now ₺5.100,00"); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Gold price alarm") || !strings.Contains(out, "₺5.100,00") {
		t.Errorf("toast output %q misses the title or body", out)
	}
}
