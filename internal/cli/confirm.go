package cli

import (
	"context"

	"github.com/aretw0/inquest"
	"github.com/aretw0/inquest/internal/presentation/tui"
)

// RunConfirm asks a single yes/no question on the terminal.
func RunConfirm(message string, debug bool) (bool, error) {
	session := inquest.New(
		inquest.WithLogger(createLogger(debug)),
		inquest.WithErrorRenderer(tui.ErrorRenderer()),
	)
	return session.Confirm(context.Background(), message)
}
