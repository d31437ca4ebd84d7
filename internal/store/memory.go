package store

// MemStore is an in-memory Store used in tests and as a reference
// implementation of the Store contract.
type MemStore struct {
	blobs map[string][]byte
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Save(name string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	s.blobs[name] = buf
	return nil
}

func (s *MemStore) Load(name string) ([]byte, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, ErrAbsent
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (s *MemStore) Exists(name string) bool {
	_, ok := s.blobs[name]
	return ok
}
