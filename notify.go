package goldtrack

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Notifier delivers threshold alerts to the user.
type Notifier interface {
	// RequestPermission reports whether system-level delivery is available.
	RequestPermission() bool
	// Notify delivers an alert, degrading to an in-app message when
	// system delivery is not permitted.
	Notify(title, body string) error
}

// ToastNotifier prints a transient in-app message. It is the degraded
// delivery path and the default in headless environments.
type ToastNotifier struct {
	W io.Writer // defaults to os.Stderr
}

func (n ToastNotifier) RequestPermission() bool { return false }

func (n ToastNotifier) Notify(title, body string) error {
	w := n.W
	if w == nil {
		w = os.Stderr
	}
	_, err := fmt.Fprintf(w, "%s — %s\n", title, body)
	return err
}

// SystemNotifier raises a desktop notification through notify-send,
// falling back to a toast when the binary is absent or fails.
type SystemNotifier struct {
	toast ToastNotifier
	path  string // resolved notify-send path, empty when unavailable
}

// NewSystemNotifier probes for notify-send and returns a notifier that
// degrades to toasts on w when it is missing.
func NewSystemNotifier(w io.Writer) *SystemNotifier {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		path = ""
	}
	return &SystemNotifier{toast: ToastNotifier{W: w}, path: path}
}

func (n *SystemNotifier) RequestPermission() bool { return n.path != "" }

func (n *SystemNotifier) Notify(title, body string) error {
	if n.path == "" {
		return n.toast.Notify(title, body)
	}
	if err := exec.Command(n.path, title, body).Run(); err != nil {
		return n.toast.Notify(title, body)
	}
	return nil
}
