package router

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/adapter/api/handler"
)

// SetupChatRouter registers the contact and message endpoints.
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler) {
	contacts := e.Group("/v1/contacts")

	contacts.GET("", chatHandler.ListContacts)             // GET  /v1/contacts - contact list + unread badge
	contacts.POST("/:id/select", chatHandler.SelectContact) // POST /v1/contacts/:id/select - set active contact
	contacts.PUT("/:id/read", chatHandler.MarkAsRead)       // PUT  /v1/contacts/:id/read - mark thread read

	contacts.GET("/:id/messages", chatHandler.GetMessages)  // GET  /v1/contacts/:id/messages
	contacts.POST("/:id/messages", chatHandler.SendMessage) // POST /v1/contacts/:id/messages
}
