package telegram

import (
	"context"
	"fmt"
	"strings"

	"focus-assistant/api/internal/prompt"
	"focus-assistant/api/internal/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the subset of *tgbotapi.BotAPI the router writes through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Assistant is implemented by *assistant.Service.
type Assistant interface {
	Quote(ctx context.Context, lang string) (string, error)
	BreakSuggestion(ctx context.Context, lang string) (string, error)
	DeterminePriority(ctx context.Context, task, lang string) types.PriorityResult
}

type Router struct {
	Bot Sender
	Svc Assistant
	Log *zap.Logger
}

var priorityLabel = map[string]string{
	"en": "Priority",
	"es": "Prioridad",
	"hi": "प्राथमिकता",
}

func helpText() string {
	return "Send me a task and I will estimate its priority.\n" +
		"Commands:\n" +
		"/priority <task> - low, medium or high with a short reason\n" +
		"/quote - a motivational quote\n" +
		"/break - a quick break idea\n" +
		"Languages: " + strings.Join(prompt.Languages(), ", ") + " (taken from your Telegram settings)"
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	cid := msg.Chat.ID
	lang := languageOf(msg)
	if !prompt.Supported(lang) {
		r.log().Debug("telegram language not supported, using default",
			zap.String("language_code", lang), zap.String("default", prompt.DefaultLanguage))
	}

	if !msg.IsCommand() {
		if strings.TrimSpace(msg.Text) == "" {
			return
		}
		r.replyPriority(ctx, cid, msg.Text, lang)
		return
	}

	switch msg.Command() {
	case "start", "help":
		r.send(cid, helpText())
	case "quote":
		q, err := r.Svc.Quote(ctx, lang)
		if err != nil {
			r.log().Warn("telegram quote fallback", zap.Int64("chat_id", cid), zap.Error(err))
		}
		r.send(cid, q)
	case "break":
		s, err := r.Svc.BreakSuggestion(ctx, lang)
		if err != nil {
			r.log().Warn("telegram break fallback", zap.Int64("chat_id", cid), zap.Error(err))
		}
		r.send(cid, s)
	case "priority":
		r.replyPriority(ctx, cid, msg.CommandArguments(), lang)
	default:
		r.send(cid, "Unknown command. Try /help")
	}
}

func (r *Router) replyPriority(ctx context.Context, cid int64, task, lang string) {
	res := r.Svc.DeterminePriority(ctx, task, lang)
	label, ok := priorityLabel[lang]
	if !ok {
		label = priorityLabel[prompt.DefaultLanguage]
	}
	r.send(cid, fmt.Sprintf("%s: %s\n%s", label, res.Priority, res.Explanation))
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log().Warn("telegram send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (r *Router) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// languageOf uses the sender's client language; region subtags are not
// mapped, so "es-MX" falls back to English like any unknown code.
func languageOf(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return prompt.DefaultLanguage
	}
	return msg.From.LanguageCode
}
