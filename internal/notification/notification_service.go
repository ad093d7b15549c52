package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CASADINKE/eiffagerh-sub000/internal/employee"
	"github.com/CASADINKE/eiffagerh-sub000/internal/leave"
	notificationerrors "github.com/CASADINKE/eiffagerh-sub000/internal/notification/errors"
	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// LeaveRequested fans a new leave request out to every company admin.
	// Per-recipient failures are logged and skipped; the call only errors
	// when the recipient list itself cannot be loaded.
	LeaveRequested(ctx context.Context, l leave.LeaveResponse) error

	ListForUser(ctx context.Context, companyID, recipientID string, filter GetNotificationsFilterRequest) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, companyID, recipientID, id string) error
	MarkAllRead(ctx context.Context, companyID, recipientID string) (int64, error)
	UnreadCount(ctx context.Context, companyID, recipientID string) (int64, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

func (s *service) LeaveRequested(ctx context.Context, l leave.LeaveResponse) error {
	log := contextutil.GetLogger(ctx, s.logger)

	admins, err := s.employees.FindAdminsByCompany(ctx, l.CompanyID)
	if err != nil {
		log.Error("leave requested fan-out admin lookup failed",
			zap.String("leave_id", l.ID),
			zap.Error(err),
		)
		return err
	}
	if len(admins) == 0 {
		log.Warn("leave requested fan-out found no admins",
			zap.String("company_id", l.CompanyID),
		)
		return nil
	}

	companyUUID, err := uuid.Parse(l.CompanyID)
	if err != nil {
		return err
	}
	leaveUUID, err := uuid.Parse(l.ID)
	if err != nil {
		return err
	}

	requester := l.EmployeeName
	if requester == "" {
		requester = l.EmployeeID
	}
	title := "Nouvelle demande de congé"
	body := fmt.Sprintf("%s a demandé un congé %s du %s au %s (%d jours).",
		requester, l.LeaveType, l.StartDate, l.EndDate, l.TotalDays)

	var delivered, failed int
	for _, admin := range admins {
		// The requester does not need to be told about their own request.
		if admin.ID.String() == l.EmployeeID {
			continue
		}

		n := &Notification{
			ID:          uuid.New(),
			CompanyID:   companyUUID,
			RecipientID: admin.ID,
			Type:        TypeLeaveRequested,
			Title:       title,
			Body:        body,
			ReferenceID: &leaveUUID,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			failed++
			log.Warn("leave requested notification insert failed",
				zap.String("leave_id", l.ID),
				zap.String("recipient_id", admin.ID.String()),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}

	log.Info("leave requested fan-out done",
		zap.String("leave_id", l.ID),
		zap.Int("delivered", delivered),
		zap.Int("failed", failed),
	)
	return nil
}

func (s *service) ListForUser(ctx context.Context, companyID, recipientID string, filter GetNotificationsFilterRequest) ([]NotificationResponse, error) {
	notifications, err := s.repo.FindAllForRecipient(ctx, companyID, recipientID, filter.UnreadOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, companyID, recipientID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	affected, err := s.repo.MarkRead(ctx, companyID, recipientID, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the notification does not exist for this recipient or it
		// was already read; distinguish so clients can treat reads as
		// idempotent.
		if _, err := s.repo.FindByIDForRecipient(ctx, companyID, recipientID, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notificationerrors.ErrNotificationNotFound
			}
			return err
		}
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, companyID, recipientID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, companyID, recipientID, time.Now().UTC())
}

func (s *service) UnreadCount(ctx context.Context, companyID, recipientID string) (int64, error) {
	return s.repo.CountUnread(ctx, companyID, recipientID)
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReferenceID != nil {
		v := n.ReferenceID.String()
		resp.ReferenceID = &v
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
