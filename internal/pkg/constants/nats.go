package constants

// NATS Subjects
const (
	// Ledger events
	SubjectTransactionRecorded = "ledger.transaction.recorded"
	SubjectTransactionDeleted  = "ledger.transaction.deleted"

	// Reminder events
	SubjectReminderDue = "notifications.reminder.due"
)

// Queue groups for NATS consumers
const (
	QueueGroupNotifications = "notifications"
)
