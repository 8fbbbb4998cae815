package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Credentials"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrReject(c, &input); !ok {
		return
	}

	_, err := h.services.SignUp(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			if h.log != nil {
				h.log.Infow("sign_up_conflict", "username", input.Username)
			}
			h.jsonMessage(c, http.StatusConflict, err.Error())
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "sign_up_failed", err)
		}
		return
	}

	h.jsonMessage(c, http.StatusCreated, "user created successfully")
}

// @Summary      Sign in and obtain a bearer token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  signInRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "message, token"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrReject(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.jsonMessage(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrInvalidPassword):
			if h.log != nil {
				h.log.Infow("sign_in_rejected", "email", input.Email)
			}
			h.jsonMessage(c, http.StatusUnauthorized, "incorrect password")
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "sign_in_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "signed in successfully",
		"token":   token,
	})
}

// @Summary      Authenticated user's profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/info [get]
// @Security     BearerAuth
func (h *Handler) userInfo(c *gin.Context) {
	u, err := h.services.UserInfo(c.Request.Context(), authedUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.jsonMessage(c, http.StatusNotFound, "user not found")
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "user_info_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"username": u.Username,
			"email":    u.Email,
		},
	})
}
