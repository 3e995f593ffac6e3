package notices

import (
	"sync"
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service хранит транзитные уведомления по сессиям и гасит их по TTL.
//
// Новое уведомление отменяет отложенную очистку предыдущего: устаревший
// таймер не должен стирать более свежий текст, поэтому очистка выполняется
// только если поколение записи не изменилось с момента постановки таймера.
type Service struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
	logger  Logger
}

type entry struct {
	notice     domain.Notice
	generation uint64
	timer      *time.Timer
}

// NewService создает центр уведомлений с заданным TTL
func NewService(ttl time.Duration, logger Logger) *Service {
	return &Service{
		ttl:     ttl,
		entries: make(map[string]*entry),
		logger:  logger,
	}
}

// Publish показывает уведомление сессии и планирует его очистку
func (s *Service) Publish(sessionID string, level domain.NoticeLevel, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[sessionID]
	if ok && current.timer != nil {
		current.timer.Stop()
	}

	var generation uint64 = 1
	if ok {
		generation = current.generation + 1
	}

	e := &entry{
		notice: domain.Notice{
			Level:       level,
			Text:        text,
			PublishedAt: time.Now(),
		},
		generation: generation,
	}
	e.timer = time.AfterFunc(s.ttl, func() {
		s.clear(sessionID, generation)
	})
	s.entries[sessionID] = e

	s.logger.Info("notices: published %s notice for session=%s", level, sessionID)
}

// Current возвращает актуальное уведомление сессии, если оно ещё не погашено
func (s *Service) Current(sessionID string) (domain.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return domain.Notice{}, false
	}
	return e.notice, true
}

func (s *Service) clear(sessionID string, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || e.generation != generation {
		// Уведомление уже заменено более новым
		return
	}
	delete(s.entries, sessionID)
}
