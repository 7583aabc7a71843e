package services

import (
	"time"

	"github.com/careguard/careguard-backend/internal/config"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// sendTimeout caps each outbound Twilio call so a slow provider never
// piles goroutines up behind device webhooks.
const sendTimeout = 15 * time.Second

// TwilioNotifier fans fall alerts out over SMS or WhatsApp. Sends are
// best-effort: each recipient is independent, failures are logged and
// never retried or surfaced to the caller.
type TwilioNotifier struct {
	client     *twilio.RestClient
	from       string
	whatsapp   bool
	recipients []string
	logger     *zap.Logger
}

func NewTwilioNotifier(cfg *config.Config, logger *zap.Logger) *TwilioNotifier {
	n := &TwilioNotifier{
		from:       cfg.TwilioFromNumber,
		whatsapp:   cfg.TwilioWhatsApp,
		recipients: cfg.AlertRecipients,
		logger:     logger,
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		n.client.Client.SetTimeout(sendTimeout)
	}

	return n
}

// SendFallAlert dispatches message to every configured recipient and
// returns immediately.
func (n *TwilioNotifier) SendFallAlert(message string) {
	if n.client == nil {
		n.logger.Warn("twilio client not configured, skipping alert")
		return
	}
	if len(n.recipients) == 0 || n.from == "" {
		n.logger.Warn("missing alert recipients or sender number, skipping alert")
		return
	}

	for _, recipient := range n.recipients {
		go n.send(recipient, message)
	}
}

func (n *TwilioNotifier) send(recipient, message string) {
	to := recipient
	from := n.from
	if n.whatsapp {
		to = "whatsapp:" + to
		from = "whatsapp:" + from
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)
	params.SetFrom(from)
	params.SetTo(to)

	_, err := n.client.Api.CreateMessage(params)
	if err != nil {
		n.logger.Error("failed to send fall alert", zap.String("to", to), zap.Error(err))
		return
	}
	n.logger.Info("fall alert sent", zap.String("to", to))
}
