package controllers

import (
	"errors"
	"net/http"

	"github.com/ja-cob-s/cantina/configs"
	"github.com/ja-cob-s/cantina/middlewares"
	"github.com/ja-cob-s/cantina/pkg/resp"
	"github.com/ja-cob-s/cantina/services"
	"github.com/ja-cob-s/cantina/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Confirm  string `json:"confirm" binding:"required,eqfield=Password"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	svc *services.AuthService
	cfg *configs.Config
}

func NewAuthController(svc *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{svc: svc, cfg: cfg}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "name": user.Name, "email": user.Email})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, services.ErrInvalidCredentials.Error())
		return
	}

	a.setSessionCookie(c, token, int(a.cfg.JWTTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email, "admin": user.Admin,
		},
	})
}

// GET /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	a.setSessionCookie(c, "", -1)
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, user)
}

func (a *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
