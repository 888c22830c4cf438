package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// toastStyle renders progress notifications.
var toastStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"}).
	Bold(true)

// Ensure ToastNotifier implements the interface.
var _ driven.Notifier = (*ToastNotifier)(nil)

// ToastNotifier prints one-line progress notifications to a terminal.
type ToastNotifier struct {
	out io.Writer
}

// NewToastNotifier creates a notifier writing to out. A nil out
// defaults to stdout.
func NewToastNotifier(out io.Writer) *ToastNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &ToastNotifier{out: out}
}

// Toast displays a transient progress message.
func (n *ToastNotifier) Toast(message string) {
	fmt.Fprintln(n.out, toastStyle.Render("• "+message))
}
