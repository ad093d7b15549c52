package notification

import (
	"net/http"

	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/apperror"
	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func getRecipientID(c *gin.Context) string {
	recipientID := c.GetString("employee_id")
	if recipientID == "" {
		recipientID = c.GetString("user_id_validated")
	}
	return recipientID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	recipientID := getRecipientID(c)

	var filterReq GetNotificationsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.ListForUser(ctx, companyID, recipientID, filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	recipientID := getRecipientID(c)

	count, err := h.service.UnreadCount(ctx, companyID, recipientID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": count}, nil)
}

func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	companyID := c.GetString("company_id")
	recipientID := getRecipientID(c)

	if err := h.service.MarkRead(ctx, companyID, recipientID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true}, nil)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	recipientID := getRecipientID(c)

	affected, err := h.service.MarkAllRead(ctx, companyID, recipientID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": affected}, nil)
}
