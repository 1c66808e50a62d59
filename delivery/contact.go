package delivery

import (
	"net/http"

	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/dto"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUseCase
}

func NewContactHandler(r *gin.Engine, contactUC domain.ContactUseCase) {
	handler := &ContactHandler{contactUC: contactUC}

	r.POST("/contact", handler.Submit)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "ContactSubmit", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	contact, err := h.contactUC.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		utils.PrintLogInfo(&req.Email, 500, "ContactSubmit", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send contact message",
			"error":   utils.TranslateDBError(err),
		})
		return
	}

	utils.PrintLogInfo(&req.Email, 201, "ContactSubmit", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Contact message sent successfully",
		"contactId": contact.ID,
	})
}
