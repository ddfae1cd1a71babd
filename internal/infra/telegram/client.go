// internal/infra/telegram/client.go
package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"
)

// NewBot creates the bot handle used for every notification. The bot is created
// offline: nothing is sent to Telegram until the first message. An empty apiURL
// selects the public Bot API.
func NewBot(token, apiURL string) (*telebot.Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return b, nil
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := &telebot.Chat{ID: chatID}
	_, err := tba.bot.Send(recipient, text, options)
	return err
}
