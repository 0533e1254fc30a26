package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCategory   = "category"
	KeyCountry    = "country"
	KeyProgram    = "program"
	KeySection    = "section"
	KeyPath       = "path"
	KeyRoot       = "root"
	KeyRebuildID  = "rebuild_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Country(slug string) slog.Attr   { return slog.String(KeyCountry, slug) }
func Program(slug string) slog.Attr   { return slog.String(KeyProgram, slug) }
func Section(key string) slog.Attr    { return slog.String(KeySection, key) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Root(p string) slog.Attr         { return slog.String(KeyRoot, p) }
func RebuildID(id string) slog.Attr   { return slog.String(KeyRebuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
