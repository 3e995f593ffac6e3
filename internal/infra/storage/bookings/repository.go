package bookings

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// Repository хранит созданные записи в памяти процесса.
// История нужна для страницы подтверждения и для просмотра заявки по ID,
// персистентности между рестартами нет.
type Repository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Booking
	ordered []string // ID в порядке создания
}

// NewRepository создает пустой репозиторий записей
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*domain.Booking),
	}
}

// Create сохраняет запись, присваивая ей новый ID
func (r *Repository) Create(booking *domain.Booking) *domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = uuid.NewString()
	stored := *booking
	r.byID[booking.ID] = &stored
	r.ordered = append(r.ordered, booking.ID)

	return booking
}

// GetByID возвращает запись по ID
func (r *Repository) GetByID(id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	copied := *booking
	return &copied, nil
}

// ListByDate возвращает записи на указанную дату, отсортированные по времени начала
func (r *Repository) ListByDate(dateKey string) []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, id := range r.ordered {
		booking := r.byID[id]
		if booking.DateKey() == dateKey {
			copied := *booking
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result
}
