package businessconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	configRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/businessconfig"
	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig/models"
)

// Service сервис для работы с расписанием бизнеса
type Service struct {
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		configRepo:   configRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Get возвращает текущую конфигурацию, а если она не сохранялась - значения по умолчанию
// Читается из БД при каждом вызове, изменения администратора видны сразу
func (s *Service) Get(ctx context.Context) (*domain.BusinessConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultBusinessConfig(), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// GetConfig возвращает текущую конфигурацию для администратора
func (s *Service) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg, s.timeProvider.Location().String()), nil
}

// Update частично обновляет конфигурацию и сохраняет ее
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating business config")

	// 1. Текущая конфигурация (или значения по умолчанию)
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения к копии
	updated := *current
	if err := req.ApplyToConfig(&updated); err != nil {
		s.logger.Warn("Update: invalid time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Валидация
	if err := updated.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем
	saved, err := s.configRepo.Upsert(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: business config saved: days=%v, %s-%s, every %d min, %d per slot",
		saved.SortedOpenDays(), saved.OpenTime, saved.CloseTime, saved.SlotDurationMinutes, saved.MaxPerSlot)
	return models.FromDomainConfig(saved, s.timeProvider.Location().String()), nil
}
