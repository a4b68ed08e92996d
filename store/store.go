// Package store persists the last-accepted MasterRecord across
// reboots. Two backends exist behind the same Store interface: a
// flash-backed implementation using golang.org/x/sys/unix directly
// on unix platforms, and an in-memory stand-in everywhere else.
//
// Grounded on driver/otp/otp.go's raw-device read/write pattern in
// the teacher repo, retargeted from OTP fuses to a flat config file.
package store

import "aethercfg/record"

// Store loads and saves the last-accepted configuration record.
type Store interface {
	// Load returns the persisted record, or record.Default() and
	// false if nothing has been saved yet.
	Load() (record.MasterRecord, bool, error)
	Save(rec record.MasterRecord) error
}
