package diagnostics

import (
	"testing"

	"aethercfg/errcode"
	"aethercfg/record"
)

func TestRoundtripRecord(t *testing.T) {
	rec := record.Default()
	rec.DeviceName = "unit-7"
	rec.Time.Enabled = true

	data, err := FromRecord(rec).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	snap, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if snap.Record == nil || snap.Record.DeviceName != "unit-7" || !snap.Record.Time.Enabled {
		t.Fatalf("got %+v", snap)
	}
	if len(snap.Errors) != 0 {
		t.Fatalf("unexpected errors in record snapshot: %v", snap.Errors)
	}
}

func TestRoundtripErrors(t *testing.T) {
	codes := []errcode.Code{
		errcode.New(errcode.Verification, errcode.NoTriggerEnabled, 1),
		errcode.WithID(errcode.Validation, errcode.SettingUnset, 3),
	}
	data, err := FromErrors(codes).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	snap, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if snap.Record != nil {
		t.Fatalf("unexpected record in error snapshot: %+v", snap.Record)
	}
	if len(snap.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(snap.Errors))
	}
	if errcode.Code(snap.Errors[0]).Kind() != errcode.NoTriggerEnabled {
		t.Fatalf("first code kind = %v, want NoTriggerEnabled", errcode.Code(snap.Errors[0]).Kind())
	}
}
