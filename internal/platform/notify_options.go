package platform

import "time"

// DefaultTimeout is how long a notification stays visible when Options
// leaves Timeout unset.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sending application. Empty means "Freehand".
	AppName string
	// IconPath, when non-empty, points to an image file the notification
	// center should show next to the message.
	IconPath string
	// Timeout is a hint for how long the notification stays on screen.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "Freehand"
	}
	return o.AppName
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
