package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// Desktop shows OS notifications. Failures are logged and swallowed.
type Desktop struct {
	log  zerolog.Logger
	icon any
	send func(title, message string, icon any) error
}

// NewDesktop returns a Desktop notifier. icon is a file path, PNG bytes or
// nil.
func NewDesktop(log zerolog.Logger, icon any) *Desktop {
	return &Desktop{
		log:  log.With().Str("component", "notify").Logger(),
		icon: icon,
		send: beeep.Notify,
	}
}

// Notify never returns an error; the OS gives no delivery confirmation.
func (d *Desktop) Notify(n Notification) error {
	if err := d.send(n.Title, n.Message, d.icon); err != nil {
		d.log.Debug().Err(err).Str("kind", n.Kind.String()).Str("title", n.Title).Msg("desktop notification failed")
		return nil
	}
	d.log.Debug().Str("kind", n.Kind.String()).Str("message", n.Message).Msg("notification sent")
	return nil
}
