package handler

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/usecase"
	"collabhub/pkg/errors"
	"collabhub/pkg/response"
)

type ChatHandler struct {
	conversationUC *usecase.ConversationUseCase
}

func NewChatHandler(conversationUC *usecase.ConversationUseCase) *ChatHandler {
	return &ChatHandler{conversationUC: conversationUC}
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListContacts returns the contact list plus the aggregate unread
// badge and the current selection.
func (h *ChatHandler) ListContacts(c echo.Context) error {
	ctx := c.Request().Context()

	contacts, err := h.conversationUC.ListContacts(ctx)
	if err != nil {
		return response.Error(c, err)
	}
	totalUnread, err := h.conversationUC.TotalUnread(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"contacts":     contacts,
		"total_unread": totalUnread,
		"selected_id":  h.conversationUC.SelectedContact(),
	})
}

func (h *ChatHandler) SelectContact(c echo.Context) error {
	if err := h.conversationUC.SelectContact(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"selected_id": c.Param("id"),
	})
}

func (h *ChatHandler) MarkAsRead(c echo.Context) error {
	if err := h.conversationUC.MarkAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"message": "Conversation marked as read",
	})
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	messages, err := h.conversationUC.ListMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.conversationUC.SendMessage(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}
