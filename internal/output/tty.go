package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Styled output and
// the checkmark banner are only rendered for interactive sessions.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
