package testutil

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
)

var _ ports.ProductStore = (*MemProductStore)(nil)

// MemProductStore — ProductStore в памяти с семантикой Postgres-реализации:
// вставка без проверки уникальности, обновление первой строки по коду.
type MemProductStore struct {
	mu    sync.Mutex
	rows  []domain.ProductDefinition
	seq   int
	calls int
	// FailWith — если задано, все мутации возвращают эту ошибку.
	FailWith error
}

func NewMemProductStore() *MemProductStore { return &MemProductStore{} }

func (s *MemProductStore) Insert(_ context.Context, def *domain.ProductDefinition) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.FailWith != nil {
		return "", s.FailWith
	}

	s.seq++
	def.ID = "p-" + strconv.Itoa(s.seq)
	def.CreatedAt = time.Unix(int64(s.seq), 0).UTC()
	s.rows = append(s.rows, *def)
	return def.ID, nil
}

func (s *MemProductStore) UpdateByCode(_ context.Context, code string, status domain.ProductStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.FailWith != nil {
		return s.FailWith
	}

	for i := range s.rows {
		if s.rows[i].Code == code {
			s.rows[i].Code = code
			s.rows[i].Status = status
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (s *MemProductStore) GetByCode(_ context.Context, code string) (*domain.ProductDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.Code == code {
			def := r
			return &def, nil
		}
	}
	return nil, nil
}

func (s *MemProductStore) LastN(_ context.Context, n int) ([]*domain.ProductDefinition, error) {
	if n <= 0 {
		return []*domain.ProductDefinition{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.ProductDefinition, 0, len(s.rows))
	for i := range s.rows {
		def := s.rows[i]
		out = append(out, &def)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if n < len(out) {
		out = out[:n]
	}
	return out, nil
}

// Rows — снимок всех строк в порядке вставки.
func (s *MemProductStore) Rows() []domain.ProductDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ProductDefinition(nil), s.rows...)
}

// MutationCalls — число вызовов Insert/UpdateByCode.
func (s *MemProductStore) MutationCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
