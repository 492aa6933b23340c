package telegram

import (
	"context"
	"errors"
	"testing"

	"focus-assistant/api/internal/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
	}
	return tgbotapi.Message{}, nil
}

type fakeAssistant struct {
	quoteErr error
	tasks    []string
	langs    []string
}

func (f *fakeAssistant) Quote(_ context.Context, lang string) (string, error) {
	f.langs = append(f.langs, lang)
	if f.quoteErr != nil {
		return "fallback quote", f.quoteErr
	}
	return "quote:" + lang, nil
}

func (f *fakeAssistant) BreakSuggestion(_ context.Context, lang string) (string, error) {
	f.langs = append(f.langs, lang)
	return "break:" + lang, nil
}

func (f *fakeAssistant) DeterminePriority(_ context.Context, task, lang string) types.PriorityResult {
	f.tasks = append(f.tasks, task)
	f.langs = append(f.langs, lang)
	return types.PriorityResult{Priority: types.PriorityHigh, Explanation: "because"}
}

func textUpdate(text, lang string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{ID: 7, LanguageCode: lang},
	}
	if len(text) > 0 && text[0] == '/' {
		n := len(text)
		for i, r := range text {
			if r == ' ' {
				n = i
				break
			}
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: n}}
	}
	return tgbotapi.Update{UpdateID: 1, Message: msg}
}

func newRouter(t *testing.T) (*Router, *fakeSender, *fakeAssistant) {
	s := &fakeSender{}
	a := &fakeAssistant{}
	return &Router{Bot: s, Svc: a, Log: zaptest.NewLogger(t)}, s, a
}

func TestRouter_Quote(t *testing.T) {
	r, s, a := newRouter(t)
	r.HandleUpdate(context.Background(), textUpdate("/quote", "es"))

	require.Len(t, s.sent, 1)
	assert.Equal(t, int64(42), s.sent[0].ChatID)
	assert.Equal(t, "quote:es", s.sent[0].Text)
	assert.Equal(t, []string{"es"}, a.langs)
}

func TestRouter_QuoteFallbackIsSent(t *testing.T) {
	r, s, a := newRouter(t)
	a.quoteErr = errors.New("down")
	r.HandleUpdate(context.Background(), textUpdate("/quote", "en"))

	require.Len(t, s.sent, 1)
	assert.Equal(t, "fallback quote", s.sent[0].Text)
}

func TestRouter_Break(t *testing.T) {
	r, s, _ := newRouter(t)
	r.HandleUpdate(context.Background(), textUpdate("/break", "hi"))

	require.Len(t, s.sent, 1)
	assert.Equal(t, "break:hi", s.sent[0].Text)
}

func TestRouter_PriorityCommand(t *testing.T) {
	r, s, a := newRouter(t)
	r.HandleUpdate(context.Background(), textUpdate("/priority Pay the electricity bill", "es"))

	require.Len(t, s.sent, 1)
	assert.Equal(t, "Prioridad: high\nbecause", s.sent[0].Text)
	assert.Equal(t, []string{"Pay the electricity bill"}, a.tasks)
}

func TestRouter_PlainTextIsPriority(t *testing.T) {
	r, s, a := newRouter(t)
	r.HandleUpdate(context.Background(), textUpdate("Book dentist", "pt-br"))

	require.Len(t, s.sent, 1)
	assert.Equal(t, "Priority: high\nbecause", s.sent[0].Text)
	assert.Equal(t, []string{"Book dentist"}, a.tasks)
	assert.Equal(t, []string{"pt-br"}, a.langs)
}

func TestRouter_HelpAndUnknown(t *testing.T) {
	r, s, a := newRouter(t)
	r.HandleUpdate(context.Background(), textUpdate("/start", "en"))
	r.HandleUpdate(context.Background(), textUpdate("/nope", "en"))

	require.Len(t, s.sent, 2)
	assert.Contains(t, s.sent[0].Text, "/priority")
	assert.Contains(t, s.sent[0].Text, "en, es, hi")
	assert.Equal(t, "Unknown command. Try /help", s.sent[1].Text)
	assert.Empty(t, a.langs)
}

func TestRouter_IgnoresEmpty(t *testing.T) {
	r, s, _ := newRouter(t)
	r.HandleUpdate(context.Background(), tgbotapi.Update{})
	r.HandleUpdate(context.Background(), textUpdate("   ", "en"))

	assert.Empty(t, s.sent)
}

func TestLanguageOf_NoSender(t *testing.T) {
	assert.Equal(t, "en", languageOf(&tgbotapi.Message{}))
}

func TestRouter_LogsUnsupportedLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		wantLogs int
	}{
		{lang: "es", wantLogs: 0},
		{lang: "es-MX", wantLogs: 1},
		{lang: "fr", wantLogs: 1},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			s, a := &fakeSender{}, &fakeAssistant{}
			r := &Router{Bot: s, Svc: a, Log: zap.New(core)}

			r.HandleUpdate(context.Background(), textUpdate("/quote", tt.lang))

			got := logs.FilterMessage("telegram language not supported, using default")
			assert.Equal(t, tt.wantLogs, got.Len())
			assert.Equal(t, []string{tt.lang}, a.langs)
		})
	}
}
