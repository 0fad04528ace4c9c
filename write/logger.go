package write

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewRunLogger returns a structured logger that writes human readable records
// to w. Colors are only used when w is a terminal. Set it as the Logger of the
// run settings to get a record at the start and end of every run.
func NewRunLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
