package aws

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the subset of the SES client used for outbound mail.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

var sesClient SESAPI

func GetSESClient() SESAPI {
	if sesClient != nil {
		return sesClient
	}
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil
	}
	sesClient = ses.NewFromConfig(cfg)
	return sesClient
}

// NewSESClient replaces the shared client, e.g. with a stub in tests.
func NewSESClient(c SESAPI) {
	sesClient = c
}

// NewSESMessage builds a plain-text SES message.
func NewSESMessage(subject, body string) *types.Message {
	return &types.Message{
		Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
		Body: &types.Body{
			Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
		},
	}
}

func SESSendMessage(ctx context.Context, from string, to []string, message *types.Message) (string, error) {
	c := GetSESClient()
	if c == nil {
		return "", errors.New("ses client unavailable")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: to},
		Source:      aws.String(from),
		Message:     message,
	}
	out, err := c.SendEmail(ctx, input)
	if err != nil {
		log.Printf("Error sending email: %s\n", err.Error())
		return "", err
	}
	id := aws.ToString(out.MessageId)
	log.Printf("Sent email with id: %s\n", id)
	return id, nil
}
