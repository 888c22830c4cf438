package driven

// Notifier emits fire-and-forget user-visible messages.
// Failures inside the notifier are never escalated to the caller.
type Notifier interface {
	// Toast shows a short status message to the user.
	Toast(message string)
}
