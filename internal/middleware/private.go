package middleware

import (
	tele "gopkg.in/telebot.v3"
)

// PrivateOnly drops updates that did not originate in a private chat.
// The intake conversation never runs in groups or channels.
func PrivateOnly() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Chat() == nil || c.Chat().Type != tele.ChatPrivate {
				return nil
			}
			return next(c)
		}
	}
}
