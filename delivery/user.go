package delivery

import (
	"errors"
	"net/http"

	"github.com/sritampradhan92-jpg/learneEdge/config"
	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/dto"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUseCase
}

func NewUserHandler(r *gin.Engine, userUC domain.UserUseCase, jwtManager *utils.JWTManager) {
	handler := &UserHandler{userUC: userUC}

	protected := r.Group("/files")
	protected.Use(config.AuthMiddleware(jwtManager))
	{
		protected.POST("/upload-avatar", handler.UploadAvatar)
	}
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	var req dto.UploadAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "UploadAvatar", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	userUUID := c.GetString("userUUID")

	avatarURL, err := h.userUC.UploadAvatar(c.Request.Context(), userUUID, req.ImageData, req.FileName)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidImage):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrUserNotFound):
			status = http.StatusNotFound
		}
		utils.PrintLogInfo(&userUUID, status, "UploadAvatar", &err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "Failed to upload avatar",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&userUUID, 200, "UploadAvatar", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Avatar uploaded successfully",
		"avatarUrl": avatarURL,
	})
}
