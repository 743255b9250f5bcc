// Package imap implements the mail source contract over an IMAP mailbox.
package imap

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/pkg/extractor"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

// Source connects to one IMAP account/mailbox. Each operation dials its own
// session, so message ids handed out by FetchUnread are UIDs, stable across
// connections to the same mailbox.
type Source struct {
	host     string
	port     int
	username string
	password string
	mailbox  string

	eml extractor.EmlExtractor
}

func NewSource(host string, port int, username, password, mailbox string) *Source {
	if port == 0 {
		port = 993
	}
	if mailbox == "" {
		mailbox = "INBOX"
	}
	return &Source{
		host:     host,
		port:     port,
		username: username,
		password: password,
		mailbox:  mailbox,
	}
}

func (s *Source) connect() (*client.Client, error) {
	c, err := client.DialTLS(fmt.Sprintf("%s:%d", s.host, s.port), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial IMAP server: %w", err)
	}
	if err := c.Login(s.username, s.password); err != nil {
		_ = c.Logout()
		return nil, fmt.Errorf("IMAP login failed: %w", err)
	}
	return c, nil
}

// FetchUnread returns the current unseen messages without marking them read.
func (s *Source) FetchUnread(ctx context.Context) ([]domain.UnreadMessage, error) {
	c, err := s.connect()
	if err != nil {
		return nil, err
	}
	defer c.Logout()

	if _, err := c.Select(s.mailbox, false); err != nil {
		return nil, fmt.Errorf("failed to select mailbox %s: %w", s.mailbox, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	uids, err := c.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search unseen messages: %w", err)
	}
	if len(uids) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(uids...)

	// BODY.PEEK keeps the \Seen flag untouched until the move succeeds.
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, 16)
	done := make(chan error, 1)
	go func() {
		done <- c.UidFetch(seqset, items, messages)
	}()

	var out []domain.UnreadMessage
	for msg := range messages {
		select {
		case <-ctx.Done():
			// Drain the channel so the fetch goroutine can finish.
			continue
		default:
		}
		out = append(out, domain.UnreadMessage{
			ID:    strconv.FormatUint(uint64(msg.Uid), 10),
			Email: s.toEmail(msg, section),
		})
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) toEmail(msg *imap.Message, section *imap.BodySectionName) domain.Email {
	email := domain.Email{}
	if msg.Envelope != nil {
		email.Subject = msg.Envelope.Subject
		if len(msg.Envelope.From) > 0 {
			email.Sender = msg.Envelope.From[0].Address()
		}
	}

	if literal := msg.GetBody(section); literal != nil {
		if raw, err := io.ReadAll(literal); err == nil {
			if body, err := s.eml.Extract(raw); err == nil {
				email.Body = body
			}
		}
	}
	return email
}

// MoveToFolder files one message; the destination is created when missing.
// Servers without MOVE get the copy+delete+expunge fallback.
func (s *Source) MoveToFolder(ctx context.Context, messageID, folder string) error {
	uid, err := strconv.ParseUint(messageID, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid message id %q: %w", messageID, err)
	}

	c, err := s.connect()
	if err != nil {
		return err
	}
	defer c.Logout()

	if _, err := c.Select(s.mailbox, false); err != nil {
		return fmt.Errorf("failed to select mailbox %s: %w", s.mailbox, err)
	}

	// Already-existing folders make Create fail; that is fine.
	_ = c.Create(folder)

	seqset := new(imap.SeqSet)
	seqset.AddNum(uint32(uid))

	if err := c.UidMove(seqset, folder); err == nil {
		return nil
	}

	if err := c.UidCopy(seqset, folder); err != nil {
		return fmt.Errorf("failed to copy message to %s: %w", folder, err)
	}
	flags := imap.FormatFlagsOp(imap.AddFlags, true)
	if err := c.UidStore(seqset, flags, []interface{}{imap.DeletedFlag}, nil); err != nil {
		return fmt.Errorf("failed to flag message deleted: %w", err)
	}
	if err := c.Expunge(nil); err != nil {
		return fmt.Errorf("failed to expunge mailbox: %w", err)
	}
	return nil
}
