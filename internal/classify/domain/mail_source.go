package domain

import "context"

// UnreadMessage pairs a mail-store message id with its parsed content.
type UnreadMessage struct {
	ID    string
	Email Email
}

// MailSource is the external mail store the sync worker iterates. Both
// operations act on whatever mailbox the source was configured with.
type MailSource interface {
	FetchUnread(ctx context.Context) ([]UnreadMessage, error)
	MoveToFolder(ctx context.Context, messageID, folder string) error
}
