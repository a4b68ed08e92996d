// Package diagnostics exports a CBOR snapshot of one config.Handler
// run: the resulting record, or the error codes that rejected it.
// Intended for field diagnostics pulled off a device over the same
// serial link used for configuration, not for normal operation.
//
// Grounded on bc/urtypes.go's compact keyasint CBOR field tags.
package diagnostics

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"aethercfg/errcode"
	"aethercfg/record"
)

// Snapshot is the CBOR-encodable export of a single Process outcome.
// Exactly one of Record or Errors is populated.
type Snapshot struct {
	Record *record.MasterRecord `cbor:"1,keyasint,omitempty"`
	Errors []uint32             `cbor:"2,keyasint,omitempty"`
}

// FromRecord builds a snapshot of a successfully applied record.
func FromRecord(rec record.MasterRecord) Snapshot {
	return Snapshot{Record: &rec}
}

// FromErrors builds a snapshot of the packed error codes that
// rejected a run.
func FromErrors(codes []errcode.Code) Snapshot {
	raw := make([]uint32, len(codes))
	for i, c := range codes {
		raw[i] = uint32(c)
	}
	return Snapshot{Errors: raw}
}

// Encode serializes the snapshot to CBOR.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := cbor.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: encode: %w", err)
	}
	return data, nil
}

// Decode parses a CBOR-encoded snapshot.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("diagnostics: decode: %w", err)
	}
	return s, nil
}
