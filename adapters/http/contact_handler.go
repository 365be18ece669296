package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/khoahotran/portfolio-api/internal/application/usecase/contact"
)

type ContactHandler struct {
	contactUseCase *contactUC.ContactUseCase
}

func NewContactHandler(uc *contactUC.ContactUseCase) *ContactHandler {
	return &ContactHandler{contactUseCase: uc}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	_, err := h.contactUseCase.SubmitMessage(c.Request.Context(), contactUC.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": "Message sent successfully!"})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactUseCase.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ContactMessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = ToContactMessageDTO(m)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := parseID(c, "contact message")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.contactUseCase.DeleteMessage(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
