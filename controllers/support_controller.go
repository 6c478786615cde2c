package controllers

import (
	"net/http"
	"strconv"

	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

type SupportController struct {
	support *services.SupportService
}

func NewSupportController(support *services.SupportService) *SupportController {
	return &SupportController{support: support}
}

// @Summary Submit support message
// @Description Support endpoint used by the storefront; user_name defaults to "Аноним"
// @Tags Backend
// @Accept json
// @Produce json
// @Param request body models.SupportRequest true "Message"
// @Success 201 {object} models.Response{data=models.SupportMessage}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/support [post]
func (ctrl *SupportController) Submit(c *gin.Context) {
	var req models.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	msg, err := ctrl.support.Submit(c.Request.Context(), req.UserName, req.Message)
	if err != nil {
		respondError(c, "Failed to save message", err)
		return
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Message received", Data: msg})
}

// @Summary List support messages
// @Description Newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.SupportMessage}
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/messages [get]
func (ctrl *SupportController) List(c *gin.Context) {
	messages, err := ctrl.support.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to get messages", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Messages retrieved", Data: messages})
}

// @Summary Reply to support message
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Param request body models.AdminReplyRequest true "Reply"
// @Success 200 {object} models.Response{data=models.SupportMessage}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/messages/{id} [put]
func (ctrl *SupportController) Reply(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		invalidRequest(c, err)
		return
	}

	var req models.AdminReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	msg, err := ctrl.support.Reply(c.Request.Context(), id, req.AdminResponse)
	if err != nil {
		respondError(c, "Failed to reply", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Reply sent", Data: msg})
}
