package checkout

import (
	"context"
	"log/slog"
	"sync"

	"github.com/foooood/storefront/internal/models"
)

// Routes the flow can signal to the navigation sink.
const (
	RouteCart         = "/cart"
	RouteOrderSuccess = "/order-success"
)

// Notifier is the toast sink: the flow emits human-readable status events
// and does not care how they are rendered.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Navigator is the navigation sink signalled on completion and on
// empty-cart checkout entry.
type Navigator interface {
	NavigateTo(ctx context.Context, route string)
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, n models.Notification) {
	logger := slog.Default()

	if n.Severity == models.SeverityError {
		logger.WarnContext(ctx, n.Title, slog.String("description", n.Description))

		return
	}

	logger.InfoContext(ctx, n.Title, slog.String("description", n.Description))
}

// RouteRecorder remembers the last signalled route so the API layer can
// surface it as a redirect.
type RouteRecorder struct {
	mu   sync.Mutex
	last string
}

func NewRouteRecorder() *RouteRecorder {
	return &RouteRecorder{}
}

func (r *RouteRecorder) NavigateTo(_ context.Context, route string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = route
}

func (r *RouteRecorder) LastRoute() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.last
}
