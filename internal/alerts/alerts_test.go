package alerts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-playground/assert/v2"
)

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSNSNotify(t *testing.T) {
	f := &fakeSNS{}
	n := NewSNS(f, "arn:aws:sns:us-east-1:123456789012:news-alerts")

	err := n.Notify(context.Background(), Alert{
		RequestID:  "req-1",
		StatusCode: 503,
		Companies:  []string{"Acme", "Globex"},
		Mode:       "latest",
		Detail:     "News API error 503: overloaded",
		At:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(f.inputs))
	in := f.inputs[0]
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:news-alerts", aws.ToString(in.TopicArn))
	assert.Equal(t, "Company news: upstream HTTP 503", aws.ToString(in.Subject))
	msg := aws.ToString(in.Message)
	assert.Equal(t, true, strings.Contains(msg, "Companies: Acme, Globex"))
	assert.Equal(t, true, strings.Contains(msg, "RequestId: req-1"))
	assert.Equal(t, true, strings.Contains(msg, "At: 2024-01-02T03:04:05Z"))
	assert.Equal(t, "503", aws.ToString(in.MessageAttributes["status_code"].StringValue))
}

func TestSNSNotifyWrapsError(t *testing.T) {
	boom := errors.New("throttled")
	n := NewSNS(&fakeSNS{err: boom}, "arn")

	err := n.Notify(context.Background(), Alert{})

	assert.Equal(t, true, errors.Is(err, boom))
}

func TestBuildMessageTransportFailure(t *testing.T) {
	subject, body := buildMessage(Alert{Mode: "archive", Companies: []string{"Acme"}})

	assert.Equal(t, "Company news: upstream transport failure", subject)
	assert.Equal(t, false, strings.Contains(body, "RequestId"))
}
