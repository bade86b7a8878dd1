package middleware

import (
	"wortschatz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Replies shared with the handlers that sit outside the middleware
const (
	MsgError          = "Something went wrong. Please try again later."
	MsgPasswordPrompt = "This bot is private. Send the password to continue:"
)

// AuthMiddleware lets users through the password gate and turns everyone else back
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := authService.Access(userID)
			if err != nil {
				logger.Error("Failed to check access in middleware", zap.Int64("user_id", userID), zap.Error(err))
				return reject(c, logger, MsgError)
			}
			if !authorized {
				logger.Debug("Rejected update from locked user", zap.Int64("user_id", userID))
				return reject(c, logger, MsgPasswordPrompt)
			}

			return next(c)
		}
	}
}

// reject stops the button spinner of a pending callback, then replies with text
func reject(c tele.Context, logger *zap.Logger, text string) error {
	if c.Callback() != nil {
		if ackErr := c.Respond(); ackErr != nil {
			logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
	}
	return c.Send(text)
}
