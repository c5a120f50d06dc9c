package sms

import (
	"context"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	cfgpkg "github.com/fitzone/memberd/pkg/config"
)

// TwilioSender delivers messages through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    *zap.SugaredLogger
}

func NewTwilioSender(cfg *cfgpkg.Config, log *zap.SugaredLogger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.SMS.AccountSID,
		Password: cfg.SMS.AuthToken,
	})
	return &TwilioSender{client: client, from: cfg.SMS.FromNumber, log: log}
}

func (s *TwilioSender) Send(ctx context.Context, toNumber, body string) bool {
	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		s.log.Errorw("sms send failed", "to", toNumber, "err", err)
		return false
	}
	s.log.Infow("sms sent", "to", toNumber)
	return true
}
