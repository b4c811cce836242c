// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
)

var _ MailClientInterface = (*Client)(nil)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Client struct {
	client *gomail.Client
	from   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Client{
		client:  client,
		from:    cfg.From,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	msg := gomail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := c.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
