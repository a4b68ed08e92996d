//go:build unix

package store

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"golang.org/x/sys/unix"

	"aethercfg/record"
)

// flashBufferSize bounds the size of one persisted record. A
// MasterRecord is a handful of small fields; this is generous
// headroom for the gob envelope.
const flashBufferSize = 4096

// flashStore persists a MasterRecord as a gob-encoded blob in a flat
// file, read and written through raw unix syscalls rather than
// os.File so the same code path works against a real flash device
// node as well as a regular file.
type flashStore struct {
	path string
}

// Open returns a Store backed by the file at path.
func Open(path string) Store { return &flashStore{path: path} }

func (s *flashStore) Load() (record.MasterRecord, bool, error) {
	fd, err := unix.Open(s.path, unix.O_RDONLY, 0)
	if err != nil {
		if err == unix.ENOENT {
			return record.Default(), false, nil
		}
		return record.MasterRecord{}, false, fmt.Errorf("store: open %s: %w", s.path, err)
	}
	defer unix.Close(fd)

	buf := make([]byte, flashBufferSize)
	n, err := unix.Read(fd, buf)
	if err != nil {
		return record.MasterRecord{}, false, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	var rec record.MasterRecord
	if err := gob.NewDecoder(bytes.NewReader(buf[:n])).Decode(&rec); err != nil {
		return record.MasterRecord{}, false, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return rec, true, nil
}

func (s *flashStore) Save(rec record.MasterRecord) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if buf.Len() > flashBufferSize {
		return fmt.Errorf("store: encoded record exceeds %d bytes", flashBufferSize)
	}

	fd, err := unix.Open(s.path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", s.path, err)
	}
	defer unix.Close(fd)
	if _, err := unix.Write(fd, buf.Bytes()); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return unix.Fsync(fd)
}
