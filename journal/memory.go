package journal

import (
	"fmt"
	"sync"

	"github.com/jjquek/custodia/common"
)

// memoryStore is a simple in-memory Store for tests and for setups
// that do not need the log to survive the process.
type memoryStore struct {
	records []Record
	lock    sync.Mutex
}

// NewMemoryStore creates an empty, non-persistent journal store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Append(record Record) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if want := uint64(len(s.records)); record.Seq != want {
		return fmt.Errorf("expected sequence %d, got %d", want, record.Seq)
	}
	s.records = append(s.records, record)
	return nil
}

func (s *memoryStore) Visit(from uint64, visit func(Record) error) error {
	s.lock.Lock()
	records := s.records
	s.lock.Unlock()
	if from > uint64(len(records)) {
		return nil
	}
	for _, record := range records[from:] {
		if err := visit(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryStore) Head() (uint64, common.Hash, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.records) == 0 {
		return 0, common.Hash{}, nil
	}
	last := s.records[len(s.records)-1]
	return last.Seq + 1, last.Digest, nil
}

func (s *memoryStore) Flush() error {
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
