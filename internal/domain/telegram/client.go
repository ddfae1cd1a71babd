package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// The notifier depends on it instead of the bot library.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
