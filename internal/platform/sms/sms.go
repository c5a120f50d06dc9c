// Package sms is the outbound text-message boundary. Callers hand it an
// E.164 number and a body; delivery is best-effort and never blocks the
// state change it was attached to.
package sms

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/fitzone/memberd/pkg/config"
)

// Sender delivers a single text message. Implementations report success as
// a boolean alongside any transport error.
type Sender interface {
	Send(ctx context.Context, toNumber, body string) bool
}

// NewSender picks the Twilio sender when credentials are configured and a
// logging no-op otherwise, so local runs work without an account.
func NewSender(cfg *cfgpkg.Config, log *zap.SugaredLogger) Sender {
	if cfg.SMS.AccountSID != "" && cfg.SMS.AuthToken != "" && cfg.SMS.FromNumber != "" {
		return NewTwilioSender(cfg, log)
	}
	log.Infow("sms delivery disabled, using noop sender")
	return &noopSender{log: log}
}

type noopSender struct {
	log *zap.SugaredLogger
}

func (s *noopSender) Send(_ context.Context, toNumber, body string) bool {
	s.log.Infow("sms skipped", "to", toNumber, "body", body)
	return false
}

var Module = fx.Options(
	fx.Provide(NewSender),
)
