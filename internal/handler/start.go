package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	return h.start(c, false)
}

// handleRestart handles /restart command
func (h *Handler) handleRestart(c tele.Context) error {
	return h.start(c, true)
}

func (h *Handler) start(c tele.Context, restart bool) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
		zap.Bool("restart", restart),
	)

	unlock := h.lockChat(chatID)
	defer unlock()

	reply := h.intake.Start(context.Background(), chatID, c.Sender().ID, restart)
	return h.send(c, reply)
}
