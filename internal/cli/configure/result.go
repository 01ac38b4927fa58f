package configure

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/thenoetrevino/workboard/internal/cli/styles"
	"github.com/thenoetrevino/workboard/internal/config"
)

// configView is the printable form of a config, with secrets masked
type configView struct {
	Driver      string `json:"driver"`
	Path        string `json:"path,omitempty"`
	DSN         string `json:"dsn,omitempty"`
	SlowQueryMS int    `json:"slow_query_ms"`
	LogLevel    string `json:"log_level"`
	LogDir      string `json:"log_dir"`
}

func newConfigView(cfg *config.Config) configView {
	view := configView{
		Driver:      cfg.Database.Driver,
		SlowQueryMS: cfg.Database.SlowQueryMS,
		LogLevel:    cfg.Log.Level,
		LogDir:      cfg.Log.Dir,
	}
	if cfg.Database.Driver == config.DriverPostgres {
		view.DSN = maskDSN(cfg.Database.DSN)
	} else {
		view.Path = cfg.Database.Path
	}
	return view
}

// location is the database file or the masked DSN
func (v configView) location() string {
	if v.DSN != "" {
		return v.DSN
	}
	return v.Path
}

func (v configView) render() string {
	return strings.Join([]string{
		styles.Field("Driver", v.Driver),
		styles.Field("Database", v.location()),
		styles.Field("Slow query", fmt.Sprintf("%dms", v.SlowQueryMS)),
		styles.Field("Log level", v.LogLevel),
		styles.Field("Log dir", v.LogDir),
	}, "\n")
}

// maskDSN hides the password of a URL-style DSN. Key/value DSNs are hidden
// entirely when they carry a password.
func maskDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
		return u.String()
	}
	if strings.Contains(dsn, "password=") {
		return "(hidden)"
	}
	return dsn
}

// initResult is the outcome of config init
type initResult struct {
	Path   string     `json:"path"`
	Config configView `json:"config"`
}

func (r *initResult) Render() string {
	return fmt.Sprintf("✓ Wrote %s\n%s", styles.TitleStyle.Render(r.Path), r.Config.render())
}

// showResult is the resolved configuration
type showResult struct {
	File   string     `json:"file"`
	Config configView `json:"config"`
}

func (r *showResult) Render() string {
	return fmt.Sprintf("%s\n%s", styles.Field("Config file", r.File), r.Config.render())
}

// QuietOutput prints only the written path
func (r *initResult) QuietOutput() string {
	return r.Path
}

// QuietOutput prints only the database location
func (r *showResult) QuietOutput() string {
	return r.Config.location()
}
