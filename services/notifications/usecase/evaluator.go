package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

const defaultEvaluatorInterval = 60 * time.Second

// RunReminderEvaluator ticks until the context is cancelled, running one
// reminder pass per tick
func (uc *NotificationUC) RunReminderEvaluator(ctx context.Context) {
	interval := defaultEvaluatorInterval
	if uc.cfg.Reminder.IntervalSeconds > 0 {
		interval = time.Duration(uc.cfg.Reminder.IntervalSeconds) * time.Second
	}

	logger.Info("Reminder evaluator started", logger.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder evaluator stopped")
			return
		case <-ticker.C:
			fired, err := uc.EvaluateReminders(ctx, time.Now())
			if err != nil {
				logger.Error("Reminder evaluation failed", logger.Err(err))
				continue
			}
			if fired > 0 {
				logger.Info("Reminders fired", logger.Int("count", fired))
			}
		}
	}
}

// EvaluateReminders runs one reminder pass at the given instant. A schedule
// is due for an offset once now >= event_time - offset while the event is
// still ahead; the unique (schedule_id, offset_minutes) key keeps re-runs
// from duplicating reminders.
func (uc *NotificationUC) EvaluateReminders(ctx context.Context, now time.Time) (int, error) {
	offsets := uc.reminderOffsets()

	maxOffset := 0
	for _, offset := range offsets {
		if offset > maxOffset {
			maxOffset = offset
		}
	}

	// One query covers every schedule any offset could fire for
	due, err := uc.notificationRepo.PendingSchedulesDue(ctx, now, now.Add(time.Duration(maxOffset)*time.Minute))
	if err != nil {
		return 0, err
	}

	fired := 0
	for _, schedule := range due {
		for _, offset := range offsets {
			threshold := schedule.EventTime.Add(-time.Duration(offset) * time.Minute)
			if now.Before(threshold) || !now.Before(schedule.EventTime) {
				continue
			}

			inserted, err := uc.fireReminder(ctx, schedule, offset)
			if err != nil {
				return fired, err
			}
			if inserted {
				fired++
			}
		}
	}

	return fired, nil
}

func (uc *NotificationUC) fireReminder(ctx context.Context, schedule models.Schedule, offset int) (bool, error) {
	offsetCopy := offset
	notification := &models.Notification{
		UserID:        schedule.UserID,
		ScheduleID:    &schedule.ID,
		OffsetMinutes: &offsetCopy,
		Title:         "Upcoming event",
		Message:       fmt.Sprintf("%s starts in %s", schedule.Title, humanizeOffset(offset)),
	}

	inserted, err := uc.notificationRepo.InsertReminder(ctx, notification)
	if err != nil || !inserted {
		return inserted, err
	}

	event := &models.ReminderEvent{
		NotificationID: notification.ID,
		ScheduleID:     schedule.ID,
		UserID:         schedule.UserID,
		OffsetMinutes:  offset,
		Title:          schedule.Title,
		EventTime:      schedule.EventTime,
	}
	if err := uc.notificationGW.PublishReminderDue(ctx, event); err != nil {
		// The reminder row is committed; delivery downstream is best effort
		logger.Warn("Failed to publish reminder event", logger.Err(err))
	}

	return true, nil
}

func humanizeOffset(minutes int) string {
	switch {
	case minutes >= 1440 && minutes%1440 == 0:
		days := minutes / 1440
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	case minutes >= 60 && minutes%60 == 0:
		hours := minutes / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%d minutes", minutes)
	}
}
