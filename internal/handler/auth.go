package handler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func loginAttemptsKey(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Password string `json:"password" validate:"required"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ip := clientIP(r)
	key := loginAttemptsKey(ip)

	redisCtx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	attempts, err := h.redisClient.Get(redisCtx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		h.internalServerError(w, r, err)
		return
	}
	if attempts >= h.config.Admin.MaxAttempts {
		h.errorResponse(w, r, "로그인 시도가 너무 많습니다. 잠시 후 다시 시도해주세요")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.adminPasswordHash, []byte(payload.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			pipe := h.redisClient.TxPipeline()
			pipe.Incr(redisCtx, key)
			pipe.Expire(redisCtx, key, time.Duration(h.config.Admin.LockDuration)*time.Second)
			if _, err := pipe.Exec(redisCtx); err != nil {
				h.internalServerError(w, r, err)
				return
			}
			h.errorResponse(w, r, "비밀번호가 올바르지 않습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.redisClient.Del(redisCtx, key).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	expiration := time.Duration(h.config.JWT.Expiration) * time.Second
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     adminTokenCookie,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(expiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.successResponse(w, r, "로그인에 성공했습니다", nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.successResponse(w, r, "로그아웃되었습니다", nil)
}
