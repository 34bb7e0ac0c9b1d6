package service

import (
	"context"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

// AuditLogService records and lists mutating API requests
type AuditLogService struct {
	auditRepo *repository.AuditLogRepository
	logger    *zap.Logger
}

func NewAuditLogService(auditRepo *repository.AuditLogRepository, logger *zap.Logger) *AuditLogService {
	return &AuditLogService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record stores an entry. Failures are logged and swallowed so auditing
// never fails the request that triggered it.
func (s *AuditLogService) Record(ctx context.Context, entry *domain.AuditLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit log",
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Error(err),
		)
	}
}

func (s *AuditLogService) List(ctx context.Context, filter repository.AuditLogFilter, page, limit int) (*domain.PaginatedResponse, error) {
	page, limit = normalizePage(page, limit)
	logs, total, err := s.auditRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, translate(err, "list audit logs")
	}
	return &domain.PaginatedResponse{
		Data:       mapper.ToAuditLogDTOs(logs),
		Pagination: newPagination(page, limit, total),
	}, nil
}

// Purge deletes entries older than the retention window
func (s *AuditLogService) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := s.auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, translate(err, "purge audit logs")
	}
	return deleted, nil
}
