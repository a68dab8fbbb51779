package handler

import (
	"sync"

	"indiekaum-bot/internal/config"
	"indiekaum-bot/internal/middleware"
	"indiekaum-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const btnNextText = "Next"

// btnNext matches the one-time "Next" reply keyboard button by text
var btnNext = tele.Btn{Text: btnNextText}

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	intake *service.IntakeService
	groups *config.GroupStore
	logger *zap.Logger

	// Per-chat locks so messages from the same chat are handled in
	// arrival order even while a handler is blocked on a network call
	chatLocks map[int64]*sync.Mutex
	chatMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	intake *service.IntakeService,
	groups *config.GroupStore,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		intake:    intake,
		groups:    groups,
		logger:    logger,
		chatLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	private := middleware.PrivateOnly()

	// Intake conversation (private chats only)
	h.bot.Handle("/start", h.handleStart, private)
	h.bot.Handle("/restart", h.handleRestart, private)
	h.bot.Handle(&btnNext, h.handleNext, private)
	h.bot.Handle(tele.OnText, h.handleText, private)

	// Group housekeeping
	h.bot.Handle(tele.OnUserJoined, h.handleServiceMessage)
	h.bot.Handle(tele.OnUserLeft, h.handleServiceMessage)
	h.bot.Handle(tele.OnChatMember, h.handleChatMember)
}

// lockChat serializes handling per chat id and returns the unlock func
func (h *Handler) lockChat(chatID int64) func() {
	h.chatMux.Lock()
	lock, exists := h.chatLocks[chatID]
	if !exists {
		lock = &sync.Mutex{}
		h.chatLocks[chatID] = lock
	}
	h.chatMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// send translates a service reply into a telebot send
func (h *Handler) send(c tele.Context, reply *service.Reply) error {
	if reply == nil {
		return nil
	}

	var opts []interface{}
	switch reply.Keyboard {
	case service.KeyboardNext:
		opts = append(opts, nextMenu())
	case service.KeyboardJoin:
		opts = append(opts, joinMenu(reply.JoinURL))
	}
	if reply.Markdown {
		opts = append(opts, tele.ModeMarkdown)
	}

	return c.Send(reply.Text, opts...)
}

// nextMenu returns the one-time "Next" reply keyboard
func nextMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(btnNextText)))
	return menu
}

// joinMenu returns the inline keyboard with the invite link button
func joinMenu(url string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL("🚀 Join IndieKaum Hub", url)))
	return markup
}
