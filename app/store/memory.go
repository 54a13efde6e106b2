package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used by the test suite and for local
// development without Firestore credentials. It mirrors the single-key
// last-writer-wins semantics of the real store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
	seq         int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]interface{})}
}

func (s *MemoryStore) collection(name string) map[string]map[string]interface{} {
	col, ok := s.collections[name]
	if !ok {
		col = make(map[string]map[string]interface{})
		s.collections[name] = col
	}
	return col
}

func (s *MemoryStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	// uuid keeps ids unique; the sequence prefix keeps insertion order stable
	// for tests that list without an explicit order field.
	id := fmt.Sprintf("%06d-%s", s.seq, uuid.New().String()[:8])
	s.collection(collection)[id] = deepCopy(data)
	return id, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[id] = deepCopy(data)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.collection(collection)[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Data: deepCopy(data)}, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.collection(collection)[id]
	if !ok {
		return ErrNotFound
	}
	for path, value := range fields {
		setPath(data, path, value)
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collection(collection), id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, collection string, q Query) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []*Document
	for id, data := range s.collection(collection) {
		match := true
		for _, f := range q.Filters {
			if !valuesEqual(data[f.Field], f.Value) {
				match = false
				break
			}
		}
		if match {
			docs = append(docs, &Document{ID: id, Data: deepCopy(data)})
		}
	}

	// order by (field, id) or by id alone; the id tiebreak keeps the cursor
	// unambiguous when documents share the same order-field value
	compare := func(a, b *Document) int {
		if q.OrderBy != "" {
			if cmp := compareValues(a.Data[q.OrderBy], b.Data[q.OrderBy]); cmp != 0 {
				return cmp
			}
		}
		return strings.Compare(a.ID, b.ID)
	}
	sort.Slice(docs, func(i, j int) bool {
		less := compare(docs[i], docs[j]) < 0
		if q.Desc {
			return !less
		}
		return less
	})

	if q.StartAfterID != "" {
		cursor := &Document{ID: q.StartAfterID}
		if q.OrderBy != "" {
			cursor.Data = map[string]interface{}{q.OrderBy: q.StartAfter}
		}
		cut := 0
		for cut < len(docs) {
			cmp := compare(docs[cut], cursor)
			if (!q.Desc && cmp > 0) || (q.Desc && cmp < 0) {
				break
			}
			cut++
		}
		docs = docs[cut:]
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

// setPath writes value at a dotted field path, creating intermediate maps.
func setPath(data map[string]interface{}, path string, value interface{}) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := data[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			data[part] = next
		}
		data = next
	}
	data[parts[len(parts)-1]] = copyValue(value)
}

func deepCopy(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		out[k] = copyValue(val)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	if nested, ok := v.(map[string]interface{}); ok {
		return deepCopy(nested)
	}
	return v
}

func valuesEqual(a, b interface{}) bool {
	return compareValues(a, b) == 0
}

func compareValues(a, b interface{}) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
