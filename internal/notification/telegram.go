package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID *int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	var ops *int64
	if opsChatID != 0 {
		ops = &opsChatID
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, opsChatID: ops, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: ops, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketIssued(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	n.send(ctx, user.TelegramChatID, ticketIssuedText(event, ticket))
}

// NotifySettlementUnadmitted tells the payer their seat could not be
// confirmed and raises the case in the ops chat for a manual refund.
func (n *TelegramNotifier) NotifySettlementUnadmitted(ctx context.Context, user *domain.User, event *domain.Event, payment *domain.PaymentIntent) {
	n.send(ctx, user.TelegramChatID, payerUnadmittedText(event))
	n.send(ctx, n.opsChatID, opsUnadmittedText(event, payment))
}

func ticketIssuedText(event *domain.Event, ticket *domain.Ticket) string {
	return fmt.Sprintf(
		"*Your ticket is ready!*\n\n"+"Event: %s\n"+"Date (UTC): %s\n\n"+"Ticket: `%s`\n"+"Code: `%s`",
		event.Title, event.EventDate.Format("02.01.2006 15:04"),
		ticket.TicketID, ticket.Token,
	)
}

func payerUnadmittedText(event *domain.Event) string {
	return fmt.Sprintf(
		"*Payment received, but the event is full*\n\n"+"Event: %s\n"+"We could not confirm your seat. A refund will be arranged.",
		event.Title,
	)
}

func opsUnadmittedText(event *domain.Event, payment *domain.PaymentIntent) string {
	return fmt.Sprintf(
		"*Refund required*\n\n"+"Reference: `%s`\n"+"Event: %s (`%s`)\n"+"Payer: `%s`\n"+"Amount (minor): %d",
		payment.Reference, event.Title, event.ID, payment.PayerID, payment.AmountMinor,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
