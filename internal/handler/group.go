package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgFollowUp = "🎉 Welcome aboard! You've joined the IndieKaum Hub. Say hi and tell the community what you're building."

// handleServiceMessage deletes join/leave system messages from the group
func (h *Handler) handleServiceMessage(c tele.Context) error {
	if err := c.Delete(); err != nil {
		h.logger.Warn("Could not delete join/leave message",
			zap.Int("message_id", c.Message().ID),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
	}
	return nil
}

// handleChatMember sends a follow-up direct message when a user's status
// in the target group transitions to member
func (h *Handler) handleChatMember(c tele.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.Chat == nil || upd.NewChatMember == nil {
		return nil
	}
	if upd.Chat.ID != h.groups.Current() {
		return nil
	}
	if upd.NewChatMember.Role != tele.Member {
		return nil
	}
	if upd.OldChatMember != nil && upd.OldChatMember.Role == tele.Member {
		return nil
	}

	user := upd.NewChatMember.User
	if user == nil {
		return nil
	}

	h.logger.Info("User joined the group",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	if _, err := h.bot.Send(user, msgFollowUp); err != nil {
		// DMs fail for users who never opened a private chat with the bot
		h.logger.Warn("Could not send follow-up message",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	}
	return nil
}
