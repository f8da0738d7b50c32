package renderer

import (
	"github.com/altintakip/goldtrack"
)

// AlarmMarkdown renders the alarm configuration.
func AlarmMarkdown(cfg goldtrack.AlarmConfig) string {
	r := newRenderer()
	r.Printf("# Price Alarm\n\n")
	r.Printf("%s\n\n", cfg.Status())
	if cfg.Target <= 0 {
		return r.String()
	}

	mode := "repeating"
	if !cfg.Repeat {
		mode = "one-shot"
	}
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Target | %.2f %s/g |\n", cfg.Target, goldtrack.DefaultCurrency)
	r.Printf("| Direction | %s |\n", cfg.Direction)
	r.Printf("| Mode | %s |\n", mode)
	if cfg.LastSide != "" {
		r.Printf("| Last side | %s |\n", cfg.LastSide)
	}
	if cfg.LastNotifiedAt != nil {
		r.Printf("| Last notified | %s |\n", cfg.LastNotifiedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return r.String()
}
