package mailer

import (
	"context"
	"happyhomes/src/config"
	"happyhomes/src/lib"
	awslib "happyhomes/src/lib/aws"
	"log"
	"strings"
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

// Notifier delivers outbound messages.
type Notifier interface {
	Send(ctx context.Context, msg *Message) error
}

type SMTPNotifier struct{}

func (SMTPNotifier) Send(ctx context.Context, msg *Message) error {
	return lib.SendMail(&lib.SendMailInput{
		From:     config.MailFrom(),
		FromName: config.MailFromName(),
		To:       msg.To,
		Subject:  msg.Subject,
		Body:     msg.Body,
	})
}

type SESNotifier struct{}

func (SESNotifier) Send(ctx context.Context, msg *Message) error {
	_, err := awslib.SESSendMessage(ctx, config.MailFrom(), msg.To, awslib.NewSESMessage(msg.Subject, msg.Body))
	return err
}

// LogNotifier writes messages to the server log instead of sending them.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, msg *Message) error {
	log.Printf("[mail] to=%s subject=%q\n%s\n", strings.Join(msg.To, ","), msg.Subject, msg.Body)
	return nil
}

var notifier Notifier

func GetNotifier() Notifier {
	if notifier != nil {
		return notifier
	}
	switch config.MailTransport() {
	case "smtp":
		notifier = SMTPNotifier{}
	case "ses":
		notifier = SESNotifier{}
	default:
		notifier = LogNotifier{}
	}
	return notifier
}

// NewNotifier replaces the shared notifier.
func NewNotifier(n Notifier) Notifier {
	notifier = n
	return notifier
}

// Dispatch sends msg on a best-effort basis. Failures are logged and dropped.
func Dispatch(ctx context.Context, msg *Message) {
	if msg == nil || len(msg.To) == 0 {
		return
	}
	for _, to := range msg.To {
		if to == "" {
			log.Printf("Skipping notification %q: empty recipient\n", msg.Subject)
			return
		}
	}
	if err := GetNotifier().Send(ctx, msg); err != nil {
		log.Printf("Error sending notification %q: %s\n", msg.Subject, err.Error())
	}
}
