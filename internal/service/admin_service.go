package service

import (
	"context"
	"fmt"
	"strings"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
)

const maxSystemLogPage = 500

// IAdminService exposes operational data to the wedding admin.
type IAdminService interface {
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]dto.SystemLogResponse, error)
}

type adminService struct {
	logger logger.ILogger
}

func NewAdminService(log logger.ILogger) IAdminService {
	return &adminService{logger: log}
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]dto.SystemLogResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > maxSystemLogPage {
		limit = maxSystemLogPage
	}

	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, apperror.InvalidArgument("unknown log level %q", level)
	}

	entries, err := s.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("read system logs: %w", err)
	}

	res := make([]dto.SystemLogResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, dto.SystemLogResponse{
			Level:     e.Level,
			Timestamp: e.Timestamp,
			Module:    e.Module,
			Message:   e.Message,
			Details:   e.Details,
		})
	}
	return res, nil
}
