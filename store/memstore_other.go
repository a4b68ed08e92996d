//go:build !unix

package store

import "aethercfg/record"

// memStore stands in for flashStore on non-unix platforms: the
// record lives only in process memory.
type memStore struct {
	rec record.MasterRecord
	has bool
}

// Open returns an in-memory Store. path is accepted but ignored.
func Open(path string) Store { return &memStore{} }

func (s *memStore) Load() (record.MasterRecord, bool, error) {
	return s.rec, s.has, nil
}

func (s *memStore) Save(rec record.MasterRecord) error {
	s.rec, s.has = rec, true
	return nil
}
