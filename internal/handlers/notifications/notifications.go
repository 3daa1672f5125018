package notifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/dto"
	"github.com/mariamstore/backend/internal/service/notifyservice"
	"github.com/mariamstore/backend/pkg/auth"
	"github.com/mariamstore/backend/pkg/utils"
)

type Service interface {
	GetNotifications(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, id, userID int) error
	MarkAllRead(ctx context.Context, userID int) error
}

type NotificationHandler struct {
	notifyService Service
}

func New(notifyService Service) *NotificationHandler {
	return &NotificationHandler{
		notifyService: notifyService,
	}
}

func toResponse(n *domain.Notification) dto.NotificationResponseDTO {
	return dto.NotificationResponseDTO{
		ID:             n.ID,
		Type:           n.Type,
		EntityID:       n.EntityID,
		Title:          n.Title,
		Message:        n.Message,
		Action:         n.Action,
		Status:         n.Status,
		PreviousStatus: n.PreviousStatus,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// GetNotifications godoc
//
//	@Summary	List notifications for the current user
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		unread	query		bool	false	"Only unread notifications"
//	@Success	200		{array}		dto.NotificationResponseDTO
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Router		/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	list, err := h.notifyService.GetNotifications(r.Context(), auth.UserID(r.Context()), unreadOnly)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NotificationResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toResponse(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CountUnread godoc
//
//	@Summary	Count unread notifications
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.UnreadCountResponseDTO
//	@Router		/api/notifications/unread-count [get]
func (h *NotificationHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	count, err := h.notifyService.CountUnread(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountResponseDTO{Unread: count})
}

// MarkRead godoc
//
//	@Summary	Mark one notification as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Notification id"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.notifyService.MarkRead(r.Context(), id, auth.UserID(r.Context())); err != nil {
		if errors.Is(err, notifyservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "notification marked as read"})
}

// MarkAllRead godoc
//
//	@Summary	Mark every notification as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifyService.MarkAllRead(r.Context(), auth.UserID(r.Context())); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "all notifications marked as read"})
}
