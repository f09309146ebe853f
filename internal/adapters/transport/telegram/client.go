// Package telegram adapts the Telegram Bot API to the bot's rendering and
// media ports and turns incoming updates into domain events.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botAPI is the subset of *tgbotapi.BotAPI the client uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Client implements ports.Renderer and ports.MediaSender on top of the Bot API.
// The underlying library has no context support; ctx is only checked before
// each call.
type Client struct {
	api    botAPI
	logger *log.Logger
}

var (
	_ ports.Renderer    = (*Client)(nil)
	_ ports.MediaSender = (*Client)(nil)
)

// Connect authenticates token against the Bot API. An empty endpoint selects
// the public Telegram API.
func Connect(token, endpoint string, httpClient *http.Client, logger *log.Logger) (*tgbotapi.BotAPI, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is required")
	}
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger != nil {
		_ = tgbotapi.SetLogger(botLogger{logger: logger})
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}

	return bot, nil
}

func NewClient(api botAPI, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{api: api, logger: logger}
}

func (c *Client) SendText(ctx context.Context, chatID int64, text string, keyboard ports.Keyboard) (domain.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return domain.MessageRef{}, err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if len(keyboard) > 0 {
		msg.ReplyMarkup = inlineKeyboard(keyboard)
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		return domain.MessageRef{}, fmt.Errorf("send message: %w", err)
	}

	return messageRef(sent, chatID), nil
}

func (c *Client) EditText(ctx context.Context, target domain.MessageRef, text string, keyboard ports.Keyboard) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(target.ChatID, target.MessageID, text)
	if len(keyboard) > 0 {
		markup := inlineKeyboard(keyboard)
		edit.ReplyMarkup = &markup
	}

	if _, err := c.api.Send(edit); err != nil {
		if isNotModified(err) {
			return nil
		}
		return fmt.Errorf("edit message: %w", err)
	}

	return nil
}

func (c *Client) DeleteMessage(ctx context.Context, target domain.MessageRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(target.ChatID, target.MessageID)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}

func (c *Client) Notify(ctx context.Context, callbackID string, text string, alert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	answer := tgbotapi.NewCallback(callbackID, text)
	if alert {
		answer = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}

	if _, err := c.api.Request(answer); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}

	return nil
}

// SendMedia posts the audio by URL; Telegram fetches the file itself.
func (c *Client) SendMedia(ctx context.Context, chatID int64, media domain.Media) (domain.MediaHandle, error) {
	if err := ctx.Err(); err != nil {
		return domain.MediaHandle{}, err
	}

	audio := tgbotapi.NewAudio(chatID, tgbotapi.FileURL(media.URL))
	audio.Title = media.Title
	audio.Performer = media.Performer

	sent, err := c.api.Send(audio)
	if err != nil {
		c.logger.Debug("send audio rejected", "chat", chatID, "url", media.URL, "err", err)
		return domain.MediaHandle{}, classifySendError(err)
	}

	return messageRef(sent, chatID), nil
}

func (c *Client) DeleteMedia(ctx context.Context, handle domain.MediaHandle) error {
	return c.DeleteMessage(ctx, handle)
}

func inlineKeyboard(keyboard ports.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func messageRef(msg tgbotapi.Message, fallbackChat int64) domain.MessageRef {
	chatID := fallbackChat
	if msg.Chat != nil {
		chatID = msg.Chat.ID
	}
	return domain.MessageRef{ChatID: chatID, MessageID: msg.MessageID}
}

type botLogger struct {
	logger *log.Logger
}

func (l botLogger) Println(v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintln(v...)))
}

func (l botLogger) Printf(format string, v ...interface{}) {
	l.logger.Debugf(format, v...)
}
