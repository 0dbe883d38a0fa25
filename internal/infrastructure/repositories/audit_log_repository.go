package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/jd6186/interview-assignments/domain"
)

// AuditLogRepositoryImpl implements domain.AuditLogRepository using GORM.
// The history tables are append-only; this repository only reads them.
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domain.AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

// ListUpdates implements domain.AuditLogRepository
func (r *AuditLogRepositoryImpl) ListUpdates(ctx context.Context, userID uint) ([]domain.UserUpdateLog, error) {
	var rows []DBUserUpdateLog
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]domain.UserUpdateLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.UserUpdateLog{
			ID:        row.ID,
			UserID:    row.UserID,
			UpdatedBy: row.UpdatedBy,
			UpdatedAt: row.UpdatedAt,
			Changes:   row.Changes,
		})
	}
	return entries, nil
}

// ListDeletions implements domain.AuditLogRepository
func (r *AuditLogRepositoryImpl) ListDeletions(ctx context.Context, userID uint) ([]domain.UserDeleteLog, error) {
	var rows []DBUserDeleteLog
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]domain.UserDeleteLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.UserDeleteLog{
			ID:         row.ID,
			UserID:     row.UserID,
			LoginEmail: row.LoginEmail,
			DeletedBy:  row.DeletedBy,
			DeletedAt:  row.DeletedAt,
			Reason:     row.Reason,
		})
	}
	return entries, nil
}
