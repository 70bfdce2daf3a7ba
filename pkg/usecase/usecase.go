package usecase

import (
	"time"

	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/infra"
)

const (
	defaultQueueDepth = 64

	// Wait after creating a previously absent workflow file. GitHub needs a
	// moment to register a new workflow before it becomes dispatchable.
	workflowGracePeriod = 3 * time.Second
)

type UseCase struct {
	clients *infra.Clients

	callbackURL string
	queueDepth  int
	sleep       func(time.Duration)

	pushQueue chan *pushJob
}

var _ interfaces.UseCase = &UseCase{}

type Option func(*UseCase)

// WithCallbackURL sets the base URL CI runs post their results back to.
func WithCallbackURL(url string) Option {
	return func(x *UseCase) {
		x.callbackURL = url
	}
}

// WithQueueDepth overrides the push queue capacity.
func WithQueueDepth(n int) Option {
	return func(x *UseCase) {
		x.queueDepth = n
	}
}

// WithSleeper replaces the grace period sleep, for tests.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(x *UseCase) {
		x.sleep = sleep
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		queueDepth: defaultQueueDepth,
		sleep:      time.Sleep,
	}

	for _, opt := range options {
		opt(uc)
	}

	uc.pushQueue = make(chan *pushJob, uc.queueDepth)

	return uc
}
