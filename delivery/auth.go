package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sritampradhan92-jpg/learneEdge/config"
	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/dto"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase) {
	handler := &AuthHandler{authUC: authUC}

	// Ping Route (no rate limiting)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	public := r.Group("/auth")
	{
		// /signup and /send-otp are the same operation: both start the OTP
		// flow. The old direct-creation signup was retired in favor of it.
		public.POST("/signup", handler.SendOTP)
		public.POST("/send-otp", handler.SendOTP)
		public.POST("/verify-otp", handler.VerifyOTP)
		public.POST("/login", handler.Login)
		public.POST("/forgot-password", handler.ForgotPassword)
		public.POST("/reset-password", handler.ResetPassword)
	}

	protected := r.Group("/auth")
	protected.Use(config.AuthMiddleware(handler.authUC.GetAccessTokenManager()))
	{
		protected.GET("/me", handler.Me)
	}
}

// authErrorStatus maps the usecase error set to HTTP statuses. Unrecognized
// errors fall through as 500 with the raw message in the body.
func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrOTPNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOTPExpired), errors.Is(err, domain.ErrOTPInvalid), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "SendOTP", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	loweredEmail := strings.ToLower(req.Email)
	expiresIn, err := h.authUC.Register(c.Request.Context(), loweredEmail, req.FullName, req.Mobile, req.Password)
	if err != nil {
		status := authErrorStatus(err)
		utils.PrintLogInfo(&loweredEmail, status, "SendOTP", &err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "Failed to send verification code",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&loweredEmail, 200, "SendOTP", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Verification code sent to your email",
		"email":     loweredEmail,
		"expiresIn": expiresIn,
	})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "VerifyOTP", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	loweredEmail := strings.ToLower(req.Email)
	user, err := h.authUC.VerifyOTP(c.Request.Context(), loweredEmail, req.OTP)
	if err != nil {
		status := authErrorStatus(err)
		utils.PrintLogInfo(&loweredEmail, status, "VerifyOTP", &err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "Failed to verify OTP",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&loweredEmail, 201, "VerifyOTP", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Account created successfully! You can now login.",
		"userId":   user.UUID,
		"email":    user.Email,
		"fullName": user.FullName,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "Login", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	loweredEmail := strings.ToLower(req.Email)
	tokens, user, err := h.authUC.Login(c.Request.Context(), loweredEmail, req.Password)
	if err != nil {
		status := authErrorStatus(err)
		utils.PrintLogInfo(&loweredEmail, status, "Login", &err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "Login failed",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&loweredEmail, 200, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login successful",
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": gin.H{
			"userId":   user.UUID,
			"fullName": user.FullName,
			"email":    user.Email,
			"mobile":   user.Mobile,
			"avatar":   user.Avatar,
		},
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "ForgotPassword", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	loweredEmail := strings.ToLower(req.Email)
	if err := h.authUC.ForgotPassword(c.Request.Context(), loweredEmail); err != nil {
		status := authErrorStatus(err)
		utils.PrintLogInfo(&loweredEmail, status, "ForgotPassword", &err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "Failed to send reset code",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&loweredEmail, 200, "ForgotPassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset code sent to your email",
		"email":   loweredEmail,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "ResetPassword", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	loweredEmail := strings.ToLower(req.Email)
	if err := h.authUC.ResetPassword(c.Request.Context(), loweredEmail, req.Code, req.NewPassword); err != nil {
		status := authErrorStatus(err)
		utils.PrintLogInfo(&loweredEmail, status, "ResetPassword", &err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "Failed to reset password",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&loweredEmail, 200, "ResetPassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successful! You can now login with your new password.",
		"email":   loweredEmail,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userUUID, exists := c.Get("userUUID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized: missing user context",
		})
		return
	}

	user, err := h.authUC.Me(c.Request.Context(), userUUID.(string))
	if err != nil {
		status := authErrorStatus(err)
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}
