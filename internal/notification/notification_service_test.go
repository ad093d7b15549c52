package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CASADINKE/eiffagerh-sub000/internal/employee"
	"github.com/CASADINKE/eiffagerh-sub000/internal/leave"
	"github.com/CASADINKE/eiffagerh-sub000/internal/notification"
	notificationerrors "github.com/CASADINKE/eiffagerh-sub000/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	created              []*notification.Notification
	createFn             func(ctx context.Context, n *notification.Notification) error
	findAllForRecipient  func(ctx context.Context, companyID, recipientID string, unreadOnly bool) ([]notification.Notification, error)
	findByIDForRecipient func(ctx context.Context, companyID, recipientID, id string) (*notification.Notification, error)
	markReadFn           func(ctx context.Context, companyID, recipientID, id string, readAt time.Time) (int64, error)
	markAllReadFn        func(ctx context.Context, companyID, recipientID string, readAt time.Time) (int64, error)
	countUnreadFn        func(ctx context.Context, companyID, recipientID string) (int64, error)
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, n); err != nil {
			return err
		}
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepository) FindAllForRecipient(ctx context.Context, companyID, recipientID string, unreadOnly bool) ([]notification.Notification, error) {
	if f.findAllForRecipient != nil {
		return f.findAllForRecipient(ctx, companyID, recipientID, unreadOnly)
	}
	return nil, nil
}

func (f *fakeNotificationRepository) FindByIDForRecipient(ctx context.Context, companyID, recipientID, id string) (*notification.Notification, error) {
	if f.findByIDForRecipient != nil {
		return f.findByIDForRecipient(ctx, companyID, recipientID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, companyID, recipientID, id string, readAt time.Time) (int64, error) {
	if f.markReadFn != nil {
		return f.markReadFn(ctx, companyID, recipientID, id, readAt)
	}
	return 1, nil
}

func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, companyID, recipientID string, readAt time.Time) (int64, error) {
	if f.markAllReadFn != nil {
		return f.markAllReadFn(ctx, companyID, recipientID, readAt)
	}
	return 0, nil
}

func (f *fakeNotificationRepository) CountUnread(ctx context.Context, companyID, recipientID string) (int64, error) {
	if f.countUnreadFn != nil {
		return f.countUnreadFn(ctx, companyID, recipientID)
	}
	return 0, nil
}

type fakeEmployeeRepository struct {
	findAdminsByCompanyFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindAdminsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAdminsByCompanyFn != nil {
		return f.findAdminsByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func leaveFixture(companyID string) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		EmployeeID:   uuid.New().String(),
		EmployeeName: "Moussa Diop",
		LeaveType:    leave.TypePaid,
		StartDate:    "2024-06-10",
		EndDate:      "2024-06-14",
		TotalDays:    5,
		Status:       leave.StatusPending,
	}
}

func TestNotificationService_LeaveRequested_FanOut(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	admins := []employee.Employee{
		{ID: uuid.New(), Role: "ADMIN"},
		{ID: uuid.New(), Role: "ADMIN"},
		{ID: uuid.New(), Role: "ADMIN"},
	}

	repo := &fakeNotificationRepository{}
	employees := &fakeEmployeeRepository{
		findAdminsByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
			assert.Equal(t, companyID, cid)
			return admins, nil
		},
	}
	svc := notification.NewService(repo, employees)

	err := svc.LeaveRequested(ctx, leaveFixture(companyID))

	assert.NoError(t, err)
	assert.Len(t, repo.created, 3)
	for _, n := range repo.created {
		assert.Equal(t, notification.TypeLeaveRequested, n.Type)
		assert.Equal(t, companyID, n.CompanyID.String())
		assert.NotNil(t, n.ReferenceID)
	}
}

func TestNotificationService_LeaveRequested_PartialFailureTolerated(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	admins := []employee.Employee{
		{ID: uuid.New(), Role: "ADMIN"},
		{ID: uuid.New(), Role: "ADMIN"},
	}
	failFor := admins[0].ID

	repo := &fakeNotificationRepository{
		createFn: func(ctx context.Context, n *notification.Notification) error {
			if n.RecipientID == failFor {
				return errors.New("insert failed")
			}
			return nil
		},
	}
	employees := &fakeEmployeeRepository{
		findAdminsByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return admins, nil
		},
	}
	svc := notification.NewService(repo, employees)

	err := svc.LeaveRequested(ctx, leaveFixture(companyID))

	assert.NoError(t, err)
	if assert.Len(t, repo.created, 1) {
		assert.Equal(t, admins[1].ID, repo.created[0].RecipientID)
	}
}

func TestNotificationService_LeaveRequested_SkipsRequester(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	requesterAdmin := employee.Employee{ID: uuid.New(), Role: "ADMIN"}
	otherAdmin := employee.Employee{ID: uuid.New(), Role: "ADMIN"}

	repo := &fakeNotificationRepository{}
	employees := &fakeEmployeeRepository{
		findAdminsByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return []employee.Employee{requesterAdmin, otherAdmin}, nil
		},
	}
	svc := notification.NewService(repo, employees)

	l := leaveFixture(companyID)
	l.EmployeeID = requesterAdmin.ID.String()

	err := svc.LeaveRequested(ctx, l)

	assert.NoError(t, err)
	if assert.Len(t, repo.created, 1) {
		assert.Equal(t, otherAdmin.ID, repo.created[0].RecipientID)
	}
}

func TestNotificationService_LeaveRequested_LookupFailure(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	repo := &fakeNotificationRepository{}
	employees := &fakeEmployeeRepository{
		findAdminsByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return nil, errors.New("db down")
		},
	}
	svc := notification.NewService(repo, employees)

	err := svc.LeaveRequested(ctx, leaveFixture(companyID))

	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	recipientID := uuid.New().String()
	notificationID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			markReadFn: func(ctx context.Context, cid, rid, id string, readAt time.Time) (int64, error) {
				return 1, nil
			},
		}
		svc := notification.NewService(repo, &fakeEmployeeRepository{})

		err := svc.MarkRead(ctx, companyID, recipientID, notificationID)

		assert.NoError(t, err)
	})

	t.Run("already read is idempotent", func(t *testing.T) {
		readAt := time.Now().UTC()
		repo := &fakeNotificationRepository{
			markReadFn: func(ctx context.Context, cid, rid, id string, at time.Time) (int64, error) {
				return 0, nil
			},
			findByIDForRecipient: func(ctx context.Context, cid, rid, id string) (*notification.Notification, error) {
				return &notification.Notification{ID: uuid.MustParse(id), ReadAt: &readAt}, nil
			},
		}
		svc := notification.NewService(repo, &fakeEmployeeRepository{})

		err := svc.MarkRead(ctx, companyID, recipientID, notificationID)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			markReadFn: func(ctx context.Context, cid, rid, id string, at time.Time) (int64, error) {
				return 0, nil
			},
		}
		svc := notification.NewService(repo, &fakeEmployeeRepository{})

		err := svc.MarkRead(ctx, companyID, recipientID, notificationID)

		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{}, &fakeEmployeeRepository{})

		err := svc.MarkRead(ctx, companyID, recipientID, "not-a-uuid")

		assert.ErrorIs(t, err, notificationerrors.ErrInvalidNotificationID)
	})
}

func TestNotificationService_ListForUser(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	recipientID := uuid.New().String()

	readAt := time.Now().UTC()
	repo := &fakeNotificationRepository{
		findAllForRecipient: func(ctx context.Context, cid, rid string, unreadOnly bool) ([]notification.Notification, error) {
			assert.True(t, unreadOnly)
			return []notification.Notification{
				{ID: uuid.New(), Type: notification.TypeLeaveRequested, Title: "Nouvelle demande de congé", ReadAt: &readAt},
			}, nil
		},
	}
	svc := notification.NewService(repo, &fakeEmployeeRepository{})

	resp, err := svc.ListForUser(ctx, companyID, recipientID, notification.GetNotificationsFilterRequest{UnreadOnly: true})

	assert.NoError(t, err)
	if assert.Len(t, resp, 1) {
		assert.Equal(t, notification.TypeLeaveRequested, resp[0].Type)
		assert.NotNil(t, resp[0].ReadAt)
	}
}
