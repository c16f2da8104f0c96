package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/config"
	"github.com/fazetdev/zimam-delivery/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exchanges the configured driver PIN for a session token.
type AuthHandler struct {
	cfg config.AuthConfig
}

func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginReq struct {
	PIN string `json:"pin" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if h.cfg.PIN == "" {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "login not configured")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(h.cfg.PIN)) != 1 {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong PIN")
		return
	}

	ttl := time.Duration(h.cfg.ExpireHours) * time.Hour
	token, err := util.GenerateToken(h.cfg.JWTSecret, ttl)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "issue token failed")
		return
	}

	util.Success(c, util.Response{
		"token":      token,
		"expires_in": int(ttl.Seconds()),
	})
}
