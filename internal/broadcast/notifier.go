package broadcast

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// SessionControl is the slice of the session manager the notifier drives when
// external markers arrive.
type SessionControl interface {
	// ForceLogout clears local state without a network call; the publishing
	// process already invalidated the session server-side.
	ForceLogout()

	// Refresh pulls the fresh session state after an external login. The
	// token itself never travels through the medium.
	Refresh(ctx context.Context) (models.Session, error)
}

const refreshOnSignalTimeout = 30 * time.Second

// Notifier connects a session manager to the signal medium in both
// directions: it implements the manager's Broadcaster, and it subscribes to
// external markers to keep this process converged with its siblings.
type Notifier struct {
	medium Medium
	logger *zap.Logger
}

// NewNotifier builds a notifier on the given medium.
func NewNotifier(medium Medium, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{medium: medium, logger: logger}
}

// BroadcastLogin publishes a login marker for sibling processes.
func (n *Notifier) BroadcastLogin() error {
	return n.medium.Publish(KindLogin)
}

// BroadcastLogout publishes a logout marker for sibling processes.
func (n *Notifier) BroadcastLogout() error {
	return n.medium.Publish(KindLogout)
}

// Start subscribes to both signal kinds on behalf of ctrl and returns a stop
// function releasing the subscriptions. Duplicate deliveries are harmless:
// clearing an already-cleared session and refreshing a fresh one are no-ops.
func (n *Notifier) Start(ctrl SessionControl) (func(), error) {
	unsubLogout, err := n.medium.Subscribe(KindLogout, func(marker Marker) {
		n.logger.Info("external logout observed", zap.Time("at", marker.At))
		ctrl.ForceLogout()
	})
	if err != nil {
		return nil, err
	}

	unsubLogin, err := n.medium.Subscribe(KindLogin, func(marker Marker) {
		n.logger.Info("external login observed", zap.Time("at", marker.At))

		ctx, cancel := context.WithTimeout(context.Background(), refreshOnSignalTimeout)
		defer cancel()
		if _, err := ctrl.Refresh(ctx); err != nil {
			n.logger.Warn("refresh after external login failed", zap.Error(err))
		}
	})
	if err != nil {
		unsubLogout()
		return nil, err
	}

	return func() {
		unsubLogout()
		unsubLogin()
	}, nil
}
