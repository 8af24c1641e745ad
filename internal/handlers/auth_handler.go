package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/washerhq/carwash-api/internal/auth"
	"github.com/washerhq/carwash-api/internal/config"
	"github.com/washerhq/carwash-api/internal/middleware"
	"github.com/washerhq/carwash-api/internal/models"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	denylist *auth.Denylist
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist *auth.Denylist) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, denylist: denylist}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.TrimSpace(req.Username)

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
		"token": token,
	})
}

// Logout revokes the presented token until it would have expired anyway.
// Without redis configured there is nothing to revoke against.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.denylist == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "logout_unsupported"})
		return
	}

	jti := c.MustGet(middleware.ContextTokenID).(string)
	expiry := c.MustGet(middleware.ContextTokenExpiry).(time.Time)

	if err := h.denylist.Revoke(c.Request.Context(), jti, time.Until(expiry)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_revoke_token"})
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Username,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
