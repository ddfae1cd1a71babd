// internal/app/notifier.go
package app

import (
	"fmt"

	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers messages to the one configured chat. Delivery is best-effort:
// failures are logged and never returned, so reporting an error cannot stop the loop.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger,
	}
}

// Notify sends message to the configured chat.
func (n *Notifier) Notify(message string) {
	log := n.logger.WithField("chat_id", n.chatID)

	if err := n.send(message); err != nil {
		log.WithError(err).Error("Failed to send Telegram message")
		return
	}
	log.WithField("text", message).Debug("Message sent")
}

// send turns a panic in the messaging client into an ordinary delivery error.
func (n *Notifier) send(message string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while sending message: %v", r)
		}
	}()
	return n.client.SendMessage(n.chatID, message, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
}
