package handler

import (
	"context"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// handleNext handles the "Next" keyboard button
func (h *Handler) handleNext(c tele.Context) error {
	chatID := c.Chat().ID

	unlock := h.lockChat(chatID)
	defer unlock()

	reply := h.intake.Next(context.Background(), chatID, c.Sender().ID)
	return h.send(c, reply)
}

// handleText feeds free-form text into the chat's current intake step
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Ignore unknown commands
	if strings.HasPrefix(text, "/") {
		return nil
	}

	chatID := c.Chat().ID

	unlock := h.lockChat(chatID)
	defer unlock()

	reply := h.intake.Input(context.Background(), chatID, c.Sender().ID, text)
	return h.send(c, reply)
}
