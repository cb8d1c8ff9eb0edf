package utils

import (
	"fmt"
	"io"
)

// UI prints emoji-prefixed status lines for a run.
type UI struct {
	out io.Writer
}

// NewUI writes to out, or nowhere when out is nil.
func NewUI(out io.Writer) *UI {
	if out == nil {
		out = io.Discard
	}
	return &UI{out: out}
}

func (u *UI) Message(format string, args ...any) {
	u.println("📦", format, args...)
}

func (u *UI) Success(format string, args ...any) {
	u.println("✅", format, args...)
}

func (u *UI) Warn(format string, args ...any) {
	u.println("⚠️ ", format, args...)
}

func (u *UI) Error(format string, args ...any) {
	u.println("❌", format, args...)
}

func (u *UI) Done(format string, args ...any) {
	u.println("💫", format, args...)
}

func (u *UI) println(prefix, format string, args ...any) {
	fmt.Fprintln(u.out, prefix+" "+fmt.Sprintf(format, args...))
}
