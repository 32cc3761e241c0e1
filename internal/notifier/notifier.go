// Package notifier drives the restock notification fan-out. Every channel
// attempt is independent: a failing or hanging channel is recorded as failed
// and never aborts the other channels or other customers' notifications.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlasboutique/storefront-platform/internal/metrics"
	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/pkg/sendGrid"
	"github.com/atlasboutique/storefront-platform/pkg/telegram"
	"github.com/atlasboutique/storefront-platform/pkg/whatsapp"
)

const (
	ChannelTelegram = "telegram"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// Result aggregates one request's channel attempts. Notified is true when at
// least one channel succeeded.
type Result struct {
	Notified     bool
	Channels     []models.ChannelOutcome
	WhatsAppLink string
}

type Notifier struct {
	telegram       telegram.Client
	email          sendGrid.EmailService
	channelTimeout time.Duration
}

func New(telegramClient telegram.Client, emailService sendGrid.EmailService, channelTimeout time.Duration) *Notifier {
	return &Notifier{
		telegram:       telegramClient,
		email:          emailService,
		channelTimeout: channelTimeout,
	}
}

// Notify runs the three channels for one pending request against the
// restocked product.
func (n *Notifier) Notify(ctx context.Context, req *models.NotifyRequest, product *models.Product) Result {

	logger := slog.Default().With(
		slog.Int64("requestId", req.ID),
		slog.String("productCode", product.Code),
	)

	message := composeCustomerMessage(req, product)

	var result Result

	// Telegram goes to the admin chat: an internal alert that a waiting
	// customer exists, not a direct customer delivery.
	telegramOutcome := n.attempt(ctx, ChannelTelegram, func(attemptCtx context.Context) error {
		return n.telegram.SendMessage(attemptCtx, composeAdminAlert(req, product))
	})
	result.Channels = append(result.Channels, telegramOutcome)

	whatsAppOutcome := models.ChannelOutcome{Channel: ChannelWhatsApp}

	link, err := whatsapp.BuildLink(req.Phone, message)
	if err != nil {
		whatsAppOutcome.Detail = err.Error()
		logger.Warn("WhatsApp link not built", slog.String("error", err.Error()))
	} else {
		whatsAppOutcome.OK = true
		result.WhatsAppLink = link
	}

	metrics.ObserveNotification(ChannelWhatsApp, whatsAppOutcome.OK)
	result.Channels = append(result.Channels, whatsAppOutcome)

	if req.Email != "" {
		emailOutcome := n.attempt(ctx, ChannelEmail, func(attemptCtx context.Context) error {
			return n.email.Send(attemptCtx, &sendGrid.EmailRequest{
				To:      req.Email,
				ToName:  req.CustomerName,
				Subject: fmt.Sprintf("%s is back in stock!", product.Name),
				Content: message,
			})
		})
		result.Channels = append(result.Channels, emailOutcome)
	}

	for _, outcome := range result.Channels {
		// The admin-facing telegram alert alone does not reach the customer.
		if outcome.OK && outcome.Channel != ChannelTelegram {
			result.Notified = true

			break
		}
	}

	if !result.Notified {
		logger.Warn("No channel reached the customer; request stays pending")
	}

	return result
}

// attempt runs one channel under its own timeout and folds the error into an
// outcome instead of propagating it.
func (n *Notifier) attempt(ctx context.Context, channel string, fn func(context.Context) error) models.ChannelOutcome {

	attemptCtx, cancel := context.WithTimeout(ctx, n.channelTimeout)
	defer cancel()

	outcome := models.ChannelOutcome{Channel: channel}

	if err := fn(attemptCtx); err != nil {
		outcome.Detail = err.Error()

		slog.Warn("Notification channel failed",
			slog.String("channel", channel),
			slog.String("error", err.Error()))
	} else {
		outcome.OK = true
	}

	metrics.ObserveNotification(channel, outcome.OK)

	return outcome
}

func composeCustomerMessage(req *models.NotifyRequest, product *models.Product) string {
	return fmt.Sprintf(
		"Hi %s! Great news: %s by %s (code %s) is back in stock at %.2f. Grab yours before it sells out again!",
		req.CustomerName, product.Name, product.Brand, product.Code, product.Price)
}

func composeAdminAlert(req *models.NotifyRequest, product *models.Product) string {
	contact := req.Phone
	if contact == "" {
		contact = req.Email
	}

	return fmt.Sprintf("Restock alert: %s (%s) is waiting on %s [%s], now at stock %d",
		req.CustomerName, contact, product.Name, product.Code, product.Stock)
}
