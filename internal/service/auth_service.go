package service

import (
	"context"
	"strings"
	"time"

	"wedding-portal-be/internal/config"
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterWeddingRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, weddingId uuid.UUID) (*dto.WeddingResponse, error)
	ChangePassword(ctx context.Context, weddingId uuid.UUID, req *dto.ChangePasswordRequest) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authConfig config.AuthConfig
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authConfig config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authConfig: authConfig,
		logger:     log,
	}
}

func (s *authService) issue(wedding *entity.Wedding) (*dto.AuthResponse, error) {
	token, err := serverutils.IssueToken(s.authConfig.JWTSecret, wedding.Id, s.authConfig.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:   token,
		Wedding: mapper.WeddingToResponse(wedding),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterWeddingRequest) (*dto.AuthResponse, error) {
	weddingDate, err := time.Parse(dateLayout, strings.TrimSpace(req.WeddingDate))
	if err != nil {
		return nil, apperror.InvalidArgument("wedding_date must be a date in YYYY-MM-DD format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.WeddingRepository().FindOne(ctx, specification.ByAdminEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	wedding := &entity.Wedding{
		CoupleNames:       strings.TrimSpace(req.CoupleNames),
		WeddingDate:       weddingDate,
		AdminEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		AdminPasswordHash: string(hash),
		IsActive:          true,
	}
	if err := uow.WeddingRepository().Create(ctx, wedding); err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Wedding registered", map[string]interface{}{"wedding_id": wedding.Id.String()})
	return s.issue(wedding)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	wedding, err := uow.WeddingRepository().FindOne(ctx, specification.ByAdminEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if wedding == nil || !wedding.IsActive {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(wedding.AdminPasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("AUTH", "Failed login attempt", map[string]interface{}{"wedding_id": wedding.Id.String()})
		return nil, apperror.Unauthorized("invalid email or password")
	}

	return s.issue(wedding)
}

func (s *authService) Me(ctx context.Context, weddingId uuid.UUID) (*dto.WeddingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	wedding, err := uow.WeddingRepository().FindOne(ctx, specification.ByID{ID: weddingId})
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, apperror.NotFound("wedding not found")
	}

	res := mapper.WeddingToResponse(wedding)
	return &res, nil
}

func (s *authService) ChangePassword(ctx context.Context, weddingId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	wedding, err := uow.WeddingRepository().FindOne(ctx, specification.ByID{ID: weddingId})
	if err != nil {
		return err
	}
	if wedding == nil {
		return apperror.NotFound("wedding not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(wedding.AdminPasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.InvalidArgument("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	wedding.AdminPasswordHash = string(hash)

	if err := uow.WeddingRepository().Update(ctx, wedding); err != nil {
		return err
	}

	s.logger.Info("AUTH", "Password changed", map[string]interface{}{"wedding_id": weddingId.String()})
	return nil
}
