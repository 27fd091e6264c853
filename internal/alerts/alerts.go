// Package alerts publishes operator notifications when the upstream news
// API fails a request.
package alerts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Notifier delivers an alert.
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// Alert describes one aborted aggregation.
type Alert struct {
	RequestID  string
	StatusCode int
	Companies  []string
	Mode       string
	Detail     string
	At         time.Time
}

// Nop drops every alert. Used when no topic is configured.
type Nop struct{}

func (Nop) Notify(context.Context, Alert) error { return nil }

// SNSClient is the subset of the SNS client used here.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNS publishes alerts to a topic.
type SNS struct {
	client   SNSClient
	topicARN string
}

func NewSNS(client SNSClient, topicARN string) *SNS {
	return &SNS{client: client, topicARN: topicARN}
}

func (s *SNS) Notify(ctx context.Context, a Alert) error {
	subject, message := buildMessage(a)

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"status_code": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(fmt.Sprintf("%d", a.StatusCode)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}

func buildMessage(a Alert) (subject string, body string) {
	status := "transport failure"
	if a.StatusCode != 0 {
		status = fmt.Sprintf("HTTP %d", a.StatusCode)
	}
	// SNS subjects are capped at 100 characters.
	subject = truncate(fmt.Sprintf("Company news: upstream %s", status), 100)

	at := a.At
	if at.IsZero() {
		at = time.Now()
	}

	lines := []string{
		"Company News Upstream Failure",
		"",
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Mode: %s", a.Mode),
		fmt.Sprintf("Companies: %s", strings.Join(a.Companies, ", ")),
	}
	if a.RequestID != "" {
		lines = append(lines, fmt.Sprintf("RequestId: %s", a.RequestID))
	}
	if a.Detail != "" {
		lines = append(lines, "", a.Detail)
	}
	lines = append(lines, "", fmt.Sprintf("At: %s", at.UTC().Format(time.RFC3339)))

	return subject, strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
