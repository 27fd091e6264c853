// Package secrets resolves the upstream API key at request time.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ErrMissing is returned when no source holds a value.
var ErrMissing = errors.New("secret not configured")

// Source yields the API key.
type Source interface {
	APIKey(ctx context.Context) (string, error)
	Name() string
}

// Env reads the key from an environment variable on every call, so a
// rotated value is picked up without a cold start.
type Env struct {
	Var string
}

func (e Env) Name() string { return e.Var }

func (e Env) APIKey(context.Context) (string, error) {
	v := strings.TrimSpace(os.Getenv(e.Var))
	if v == "" {
		return "", fmt.Errorf("%s: %w", e.Var, ErrMissing)
	}
	return v, nil
}

// SSMClient is the subset of the SSM client used here.
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMParameter reads a SecureString parameter from Parameter Store.
type SSMParameter struct {
	Client    SSMClient
	Parameter string
}

func (p SSMParameter) Name() string { return "ssm:" + p.Parameter }

func (p SSMParameter) APIKey(ctx context.Context) (string, error) {
	out, err := p.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.Parameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("ssm GetParameter %s: %w", p.Parameter, err)
	}
	if out.Parameter == nil || strings.TrimSpace(aws.ToString(out.Parameter.Value)) == "" {
		return "", fmt.Errorf("ssm:%s: %w", p.Parameter, ErrMissing)
	}
	return strings.TrimSpace(aws.ToString(out.Parameter.Value)), nil
}

// Chain tries each source in order. A source reporting ErrMissing falls
// through to the next one; any other error stops the chain.
type Chain []Source

func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, s := range c {
		names = append(names, s.Name())
	}
	return strings.Join(names, ",")
}

func (c Chain) APIKey(ctx context.Context) (string, error) {
	for _, s := range c {
		v, err := s.APIKey(ctx)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrMissing) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s: %w", c.Name(), ErrMissing)
}
