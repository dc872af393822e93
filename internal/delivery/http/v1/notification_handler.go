package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.PATCH("/read-all", handler.MarkAllRead)
		notifications.PATCH("/:id/read", handler.MarkRead)
		notifications.DELETE("/:id", handler.Delete)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	page, pageSize := pageParams(c)
	unreadOnly := c.Query("unread_only") == "true"

	notifications, total, err := h.notificationUC.ListMine(c.Request.Context(), identity, unreadOnly, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notifications retrieved", response.Paginated{
		Items: notifications, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.notificationUC.MarkRead(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.notificationUC.MarkAllRead(c.Request.Context(), identity); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All notifications marked as read", nil)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.notificationUC.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification deleted", nil)
}
