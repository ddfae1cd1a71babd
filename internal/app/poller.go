// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// StatusSource returns the raw homework statuses payload changed since fromDate.
type StatusSource interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// Sleeper pauses the loop between cycles.
type Sleeper interface {
	Sleep(ctx context.Context, interval time.Duration) error
}

const failurePrefix = "Сбой в работе программы: "

// Poller owns the cursor and runs fetch, validate, render and notify once per cycle.
// It is not safe for concurrent use; there is exactly one loop per process.
type Poller struct {
	source      StatusSource
	notifier    *Notifier
	sleeper     Sleeper
	retryPeriod time.Duration
	logger      *logrus.Entry

	cursor int64
}

func NewPoller(
	source StatusSource,
	notifier *Notifier,
	sleeper Sleeper,
	retryPeriod time.Duration,
	start time.Time, // initial cursor
	logger *logrus.Entry,
) *Poller {
	return &Poller{
		source:      source,
		notifier:    notifier,
		sleeper:     sleeper,
		retryPeriod: retryPeriod,
		logger:      logger,
		cursor:      start.Unix(),
	}
}

// Cursor returns the from_date used by the next cycle.
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// Run repeats cycles forever, sleeping retryPeriod after each one whatever its outcome.
// It only returns when the sleeper fails, which happens once ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("cursor", p.cursor).Info("Polling started")
	for {
		p.RunCycle(ctx)
		if err := p.sleeper.Sleep(ctx, p.retryPeriod); err != nil {
			return err
		}
	}
}

// RunCycle executes one cycle. Any failure is reported to the chat and the log, then
// returned for inspection; the cursor is left unchanged in that case.
func (p *Poller) RunCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in polling cycle: %v", r)
			p.reportFailure(err)
		}
	}()

	if err = p.cycle(ctx); err != nil {
		p.reportFailure(err)
	}
	return err
}

func (p *Poller) cycle(ctx context.Context) error {
	log := p.logger.WithField("cursor", p.cursor)

	payload, err := p.source.HomeworkStatuses(ctx, p.cursor)
	if err != nil {
		return err
	}
	homeworks, err := homework.Validate(payload)
	if err != nil {
		return err
	}
	log.WithField("count", len(homeworks)).Info("Homework list received")

	if len(homeworks) == 0 {
		// The cursor stays put on empty cycles, so the next fetch overlaps this window.
		log.Info("No new notifications")
		return nil
	}

	message, err := homework.Render(homeworks[0])
	if err != nil {
		return err
	}
	currentDate, err := homework.CurrentDate(payload)
	if err != nil {
		return err
	}

	p.notifier.Notify(message)
	p.cursor = currentDate
	log.WithField("next_cursor", currentDate).Info("Status change delivered")
	return nil
}

func (p *Poller) reportFailure(err error) {
	message := failurePrefix + err.Error()
	p.notifier.Notify(message)
	p.logger.WithFields(logrus.Fields{
		"kind":   homework.KindOf(err).String(),
		"cursor": p.cursor,
	}).WithError(err).Error(message)
}
