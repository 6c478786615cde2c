package controllers

import (
	"net/http"

	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	auth *services.AuthService
}

func NewAdminController(auth *services.AuthService) *AdminController {
	return &AdminController{auth: auth}
}

// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.AdminSession}
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	session, err := ctrl.auth.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Login successful", Data: session})
}

// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/logout [post]
func (ctrl *AdminController) Logout(c *gin.Context) {
	if err := ctrl.auth.Logout(c.Request.Context(), c.GetString("admin_session_id")); err != nil {
		respondError(c, "Logout failed", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}

// @Summary Admin session
// @Description Reports whether the bearer token belongs to a live admin session
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/session [get]
func (ctrl *AdminController) Session(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Session active",
		Data: gin.H{
			"authenticated": true,
			"login":         c.GetString("admin_login"),
		},
	})
}
