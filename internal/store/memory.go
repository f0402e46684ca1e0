package store

import (
	"context"
	"sync"

	"github.com/DRSN-tech/commerce-backend/pkg/e"
)

// MemoryStore — локальный бэкенд хранилища записей.
// Используется как деградированный режим, когда Redis недоступен на старте.
// Экземпляр создаётся явно и принадлежит процессу; никакого
// пакетного реестра, общего для разных видов сущностей, нет.
type MemoryStore struct {
	mu      sync.RWMutex
	schema  Schema
	records map[string]Fields
	order   []string            // ключи в порядке вставки, для стабильного ListIDs
	issued  map[string]struct{} // все когда-либо выданные ключи, включая удалённые
}

func NewMemoryStore(schema Schema) *MemoryStore {
	return &MemoryStore{
		schema:  schema,
		records: make(map[string]Fields),
		issued:  make(map[string]struct{}),
	}
}

func (m *MemoryStore) Create(_ context.Context, fields Fields) (*Record, error) {
	normalized, err := m.schema.normalize(fields)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Ключ удалённой записи не выдаётся повторно в рамках жизни хранилища.
	id := newID()
	for {
		if _, taken := m.issued[id]; !taken {
			break
		}
		id = newID()
	}

	m.issued[id] = struct{}{}
	m.records[id] = normalized
	m.order = append(m.order, id)

	return &Record{ID: id, Fields: normalized.clone()}, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.records[id]
	if !ok {
		return nil, e.ErrRecordNotFound
	}

	return &Record{ID: id, Fields: fields.clone()}, nil
}

func (m *MemoryStore) ListIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.records))
	for _, id := range m.order {
		if _, ok := m.records[id]; ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (m *MemoryStore) ListAll(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, 0, len(m.records))
	for _, id := range m.order {
		if fields, ok := m.records[id]; ok {
			records = append(records, &Record{ID: id, Fields: fields.clone()})
		}
	}

	return records, nil
}

func (m *MemoryStore) FindBy(_ context.Context, field string, value any) ([]*Record, error) {
	kind, ok := m.schema.Fields[field]
	if !ok {
		return nil, e.Wrap("FindBy: unknown field "+field, e.ErrStatusBadRequest)
	}

	want, err := coerce(kind, value)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]*Record, 0)
	for _, id := range m.order {
		fields, ok := m.records[id]
		if !ok {
			continue
		}
		if fields[field] == want {
			matches = append(matches, &Record{ID: id, Fields: fields.clone()})
		}
	}

	return matches, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fields Fields) error {
	normalized, err := m.schema.normalize(fields)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return e.ErrRecordNotFound
	}
	m.records[id] = normalized

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return e.ErrRecordNotFound
	}
	delete(m.records, id)

	return nil
}
