package handlers

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"companynews/internal/alerts"
	"companynews/internal/config"
	"companynews/internal/news"
	"companynews/internal/secrets"
)

// BuildNewsHandler wires the handler from configuration. AWS clients are
// only created when an SSM parameter or alert topic is configured.
func BuildNewsHandler(ctx context.Context, cfg config.Config, log *zap.Logger) (*NewsHandler, error) {
	client := news.NewClient(news.Options{
		BaseURL:  cfg.BaseURL,
		Language: cfg.Language,
		Timeout:  cfg.HTTPTimeout,
	})

	src := secrets.Chain{secrets.Env{Var: cfg.APIKeyEnv}}
	var notifier alerts.Notifier = alerts.Nop{}

	if cfg.NeedsAWS() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		if cfg.APIKeySSMParam != "" {
			src = append(src, secrets.SSMParameter{Client: ssm.NewFromConfig(awsCfg), Parameter: cfg.APIKeySSMParam})
		}
		if cfg.AlertsTopicARN != "" {
			notifier = alerts.NewSNS(sns.NewFromConfig(awsCfg), cfg.AlertsTopicARN)
		}
	}

	return NewNewsHandler(NewsDeps{
		Fetcher:      client,
		Secrets:      src,
		Alerts:       notifier,
		Log:          log,
		KeyName:      cfg.APIKeyEnv,
		DefaultPages: cfg.DefaultPages,
		MaxPages:     cfg.MaxPages,
	}), nil
}
