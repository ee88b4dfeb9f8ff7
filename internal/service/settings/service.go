package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Service сервис системных настроек
type Service struct {
	repo      SettingsRepository
	txManager TransactionManager
	logger    Logger
}

func NewService(repo SettingsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{repo: repo, txManager: txManager, logger: logger}
}

// GetAll возвращает все настройки в виде ключ - значение
// Отсутствующие ключи заполняются значениями по умолчанию
func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Settings.GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	values := toMap(rows)
	limits := domain.LimitsFromSettings(values)
	if _, ok := values[domain.SettingMaxBookingDurationHours]; !ok {
		values[domain.SettingMaxBookingDurationHours] = strconv.Itoa(limits.MaxDurationHours)
	}
	if _, ok := values[domain.SettingMaxDaysAhead]; !ok {
		values[domain.SettingMaxDaysAhead] = strconv.Itoa(limits.MaxDaysAhead)
	}

	return values, nil
}

// Limits возвращает действующие лимиты бронирования
// Ошибка чтения не блокирует бронирование: используются значения по умолчанию
func (s *Service) Limits(ctx context.Context) domain.BookingLimits {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Warn("Settings.Limits: falling back to defaults: %v", err)
		return domain.DefaultBookingLimits()
	}
	return domain.LimitsFromSettings(toMap(rows))
}

// Update сохраняет набор настроек в одной транзакции
func (s *Service) Update(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if !domain.IsKnownSetting(key) {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
		if v, err := strconv.Atoi(value); err != nil || v <= 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for key, value := range values {
			if err := s.repo.Upsert(txCtx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Settings.Update: repository error: %v", err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Settings.Update: saved %d settings", len(values))
	return nil
}

func toMap(rows []*domain.Setting) map[string]string {
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values
}
