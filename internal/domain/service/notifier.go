package service

// Notifier is the fire-and-forget sink for user-facing alerts. The
// core never reads anything back from it.
type Notifier interface {
	Notify(title, body, action string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(title, body, action string) {}
