package availability

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// Store хранит занятые слоты в памяти процесса: ключ даты (YYYY-MM-DD) ->
// множество меток времени. Состояние живёт только в рамках сессии процесса
// и не переживает рестарт.
//
// Мутация происходит только через Reserve при успешном создании записи,
// остальные операции читающие.
type Store struct {
	mu   sync.RWMutex
	busy map[string]map[types.TimeString]struct{}
}

// NewStore создает пустое хранилище занятых слотов
func NewStore() *Store {
	return &Store{
		busy: make(map[string]map[types.TimeString]struct{}),
	}
}

// Seed загружает стартовые занятые слоты (демо-данные из конфигурации)
// Некорректные записи отбрасываются с ошибкой, валидные применяются
func (s *Store) Seed(entries map[string][]string) error {
	for dateKey, times := range entries {
		if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDateKey, dateKey)
		}
		for _, raw := range times {
			label, err := types.NewTimeStringFromString(raw)
			if err != nil {
				return fmt.Errorf("%w: %q for date %s", ErrInvalidTime, raw, dateKey)
			}
			s.Reserve(dateKey, label)
		}
	}
	return nil
}

// IsBusy проверяет, занята ли метка времени на указанную дату
// Отсутствующий ключ даты означает полностью свободный день
func (s *Store) IsBusy(dateKey string, t types.TimeString) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	times, ok := s.busy[dateKey]
	if !ok {
		return false
	}
	_, busy := times[t]
	return busy
}

// Reserve помечает слот занятым. Идемпотентна: повторное резервирование
// уже занятого слота не меняет состояние и не является ошибкой.
// Операции удаления нет — отмены записи вне рамок сервиса.
func (s *Store) Reserve(dateKey string, t types.TimeString) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times, ok := s.busy[dateKey]
	if !ok {
		times = make(map[types.TimeString]struct{})
		s.busy[dateKey] = times
	}
	times[t] = struct{}{}
}

// BusyTimes возвращает отсортированную копию занятых меток даты
func (s *Store) BusyTimes(dateKey string) []types.TimeString {
	s.mu.RLock()
	defer s.mu.RUnlock()

	times := s.busy[dateKey]
	result := make([]types.TimeString, 0, len(times))
	for t := range times {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IsBefore(result[j])
	})
	return result
}

// BusyCount возвращает количество занятых слотов даты
func (s *Store) BusyCount(dateKey string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.busy[dateKey])
}
