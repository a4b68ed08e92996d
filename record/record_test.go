package record

import "testing"

func TestAnyTriggerEnabled(t *testing.T) {
	rec := Default()
	if rec.AnyTriggerEnabled() {
		t.Fatal("default record reports a trigger enabled")
	}
	rec.Orientation.Enabled = true
	if !rec.AnyTriggerEnabled() {
		t.Fatal("AnyTriggerEnabled false with Orientation.Enabled = true")
	}
}

func TestReset(t *testing.T) {
	rec := Default()
	rec.DeviceName = "stale"
	rec.Time.Enabled = true
	rec.Status = StatusOK

	rec.Reset()

	if rec.DeviceName != "" || rec.Time.Enabled || rec.Status != StatusUnknown {
		t.Fatalf("Reset left non-default state: %+v", rec)
	}
}
