package notification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindAllForRecipient(ctx context.Context, companyID, recipientID string, unreadOnly bool) ([]Notification, error)
	FindByIDForRecipient(ctx context.Context, companyID, recipientID, id string) (*Notification, error)
	MarkRead(ctx context.Context, companyID, recipientID, id string, readAt time.Time) (int64, error)
	MarkAllRead(ctx context.Context, companyID, recipientID string, readAt time.Time) (int64, error)
	CountUnread(ctx context.Context, companyID, recipientID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAllForRecipient(ctx context.Context, companyID, recipientID string, unreadOnly bool) ([]Notification, error) {
	db := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("recipient_id = ?", recipientID)
	if unreadOnly {
		db = db.Where("read_at IS NULL")
	}

	var notifications []Notification
	err := db.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *repository) FindByIDForRecipient(ctx context.Context, companyID, recipientID, id string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("recipient_id = ?", recipientID).
		First(&n, "id = ?", id).Error
	return &n, err
}

func (r *repository) MarkRead(ctx context.Context, companyID, recipientID, id string, readAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Where("recipient_id = ?", recipientID).
		Where("read_at IS NULL").
		Update("read_at", readAt)
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, companyID, recipientID string, readAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("company_id = ?", companyID).
		Where("recipient_id = ?", recipientID).
		Where("read_at IS NULL").
		Update("read_at", readAt)
	return res.RowsAffected, res.Error
}

func (r *repository) CountUnread(ctx context.Context, companyID, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("company_id = ?", companyID).
		Where("recipient_id = ?", recipientID).
		Where("read_at IS NULL").
		Count(&count).Error
	return count, err
}
