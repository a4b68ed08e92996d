package store

import (
	"path/filepath"
	"testing"

	"aethercfg/record"
)

func TestLoadMissingFile(t *testing.T) {
	st := Open(filepath.Join(t.TempDir(), "missing.bin"))
	rec, ok, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("ok = true for a file that was never saved")
	}
	if rec != record.Default() {
		t.Fatalf("rec = %+v, want the default record", rec)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := Open(filepath.Join(t.TempDir(), "current.bin"))
	rec := record.Default()
	rec.DeviceName = "unit-3"
	rec.Acceleration.Enabled = true
	rec.Acceleration.WriteTo.SD = true

	if err := st.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("ok = false after Save")
	}
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}
