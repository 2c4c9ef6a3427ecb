package notifications

import (
	"context"

	"github.com/9ssi7/exponent"
)

// PushSender is the part of the Expo client the notifier needs.
type PushSender interface {
	Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error)
}
