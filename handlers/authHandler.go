package handlers

import (
	"net/http"
	"strconv"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

// currentUserID resolves the authenticated user from the request context set
// by the token middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Register handles new user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, err := h.UserService.ValidateAndCreateUser(c.Request.Context(), &input)
	if err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, user)
}

// Login authenticates the user and returns tokens along with the profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, err := h.UserService.AuthenticateUser(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		middlewares.RespondError(c, "Invalid email or password", http.StatusUnauthorized, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(strconv.FormatInt(user.ID, 10))
	if err != nil {
		middlewares.RespondError(c, "Failed to generate tokens", http.StatusInternalServerError, err)
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	middlewares.RespondSuccess(c, http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// RefreshToken issues a fresh access token from a still-valid one.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := c.Cookie("refreshToken")
	if err != nil || token == "" {
		token = c.DefaultQuery("accessToken", "")
	}
	if token == "" {
		middlewares.RespondError(c, "Missing token", http.StatusBadRequest, nil)
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		middlewares.RespondError(c, "Invalid token", http.StatusUnauthorized, err)
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID)
	if err != nil {
		middlewares.RespondError(c, "Failed to generate access token", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logoff logs the user out by clearing cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// SendResetCode mails a password reset code to the user's email.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.GetUserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		middlewares.RespondError(c, "User not found", http.StatusNotFound, err)
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, user.Email, code); err != nil {
		middlewares.RespondError(c, "Failed to set reset code", http.StatusInternalServerError, err)
		return
	}
	if err := utils.SendResetCodeEmail(user.Email, code); err != nil {
		middlewares.RespondError(c, "Failed to send reset code email", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Reset code sent"})
}

// ChangePassword completes the reset flow with the mailed code.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidatePasswordReset(data.Code, data.NewPassword); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	if err := h.UserService.ChangePassword(c.Request.Context(), data.Email, data.Code, data.NewPassword); err != nil {
		if err == utils.ErrInvalidResetCode {
			middlewares.RespondError(c, "Invalid reset code", http.StatusUnauthorized, err)
			return
		}
		middlewares.RespondError(c, "Failed to update password", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// GetUserProfile retrieves the authenticated user's profile.
func (h *AuthHandler) GetUserProfile(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		middlewares.RespondError(c, "Invalid user ID", http.StatusUnauthorized, nil)
		return
	}

	user, err := h.UserService.GetUserByID(c.Request.Context(), id)
	if err != nil || user == nil {
		middlewares.RespondError(c, "User not found", http.StatusNotFound, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, user)
}

// UpdateUserProfile updates the authenticated user's account settings.
func (h *AuthHandler) UpdateUserProfile(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		middlewares.RespondError(c, "Invalid user ID", http.StatusUnauthorized, nil)
		return
	}

	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, err := h.UserService.UpdateUserProfile(c.Request.Context(), id, &input)
	if err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, user)
}

// GetAllUsers lists all accounts for the settings page.
func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to retrieve users", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, users)
}

// UpdateUser edits any account by id from the settings page.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		middlewares.RespondError(c, "Invalid user ID", http.StatusBadRequest, err)
		return
	}

	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, err := h.UserService.UpdateUserProfile(c.Request.Context(), id, &input)
	if err != nil {
		if err.Error() == "user not found" {
			middlewares.RespondError(c, "User not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, user)
}

// DeleteUser removes a user account by id.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		middlewares.RespondError(c, "Invalid user ID", http.StatusBadRequest, err)
		return
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		if err.Error() == "user not found" {
			middlewares.RespondError(c, "User not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to delete user account", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Account deleted"})
}
