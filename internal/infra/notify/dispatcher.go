package notify

import (
	"context"
	"log/slog"
	"sync"

	"ledger/config"
	"ledger/internal/domain/entity"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"

	"go.uber.org/fx"
)

// dispatcher implements service.NotificationSink with a bounded queue and a
// small worker pool. Each accepted event is written as an in-app notification
// row and mailed best-effort. Delivery is at-most-once; a full queue drops the
// event with a warning instead of blocking the primary operation.
type dispatcher struct {
	logger           *slog.Logger
	mailer           Mailer
	notificationRepo repository.NotificationRepository

	queue chan service.AccountEvent
	done  chan struct{}
	wg    sync.WaitGroup
	stop  sync.Once
}

// DispatcherParams holds dependencies for the notification dispatcher.
type DispatcherParams struct {
	fx.In
	fx.Lifecycle

	Config           *config.Config
	Logger           *slog.Logger
	Mailer           Mailer
	NotificationRepo repository.NotificationRepository
}

// NewDispatcher creates the notification sink and ties its worker pool to the
// application lifecycle.
func NewDispatcher(params DispatcherParams) service.NotificationSink {
	d := newDispatcher(params.Logger, params.Mailer, params.NotificationRepo, params.Config.Notify.QueueSize)

	workers := params.Config.Notify.Workers

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.start(workers)

			return nil
		},
		OnStop: func(_ context.Context) error {
			d.shutdown()

			return nil
		},
	})

	return d
}

func newDispatcher(logger *slog.Logger, mailer Mailer, notificationRepo repository.NotificationRepository, queueSize int) *dispatcher {
	return &dispatcher{
		logger:           logger,
		mailer:           mailer,
		notificationRepo: notificationRepo,
		queue:            make(chan service.AccountEvent, queueSize),
		done:             make(chan struct{}),
	}
}

func (d *dispatcher) start(workers int) {
	for range workers {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *dispatcher) shutdown() {
	d.stop.Do(func() { close(d.done) })
	d.wg.Wait()
}

// Dispatch queues an event without blocking. Events arriving after shutdown or
// while the queue is full are dropped.
func (d *dispatcher) Dispatch(ctx context.Context, event service.AccountEvent) {
	select {
	case <-d.done:
		d.logger.LogAttrs(ctx, slog.LevelWarn, "notification dropped, dispatcher stopped",
			slog.String("userID", event.UserID.String()),
			slog.String("title", event.Title),
		)

		return
	default:
	}

	select {
	case d.queue <- event:
	default:
		d.logger.LogAttrs(ctx, slog.LevelWarn, "notification dropped, queue full",
			slog.String("userID", event.UserID.String()),
			slog.String("title", event.Title),
		)
	}
}

func (d *dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.done:
			return
		case event := <-d.queue:
			d.deliver(event)
		}
	}
}

// deliver runs with its own deadline since the originating request context is
// long gone by the time a worker picks the event up.
func (d *dispatcher) deliver(event service.AccountEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	notification := &entity.Notification{
		UserID:  event.UserID,
		Title:   event.Title,
		Message: event.Message,
	}
	if err := d.notificationRepo.CreateNotification(ctx, notification); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelError, "failed to store notification",
			slog.String("userID", event.UserID.String()),
			slog.String("title", event.Title),
			slog.String("error", err.Error()),
		)
	}

	if event.Email == "" {
		return
	}

	if err := d.mailer.Send(ctx, event.Email, event.Title, event.Message); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelWarn, "failed to send notification email",
			slog.String("userID", event.UserID.String()),
			slog.String("title", event.Title),
			slog.String("error", err.Error()),
		)
	}
}
