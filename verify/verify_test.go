package verify

import (
	"testing"

	"aethercfg/errcode"
	"aethercfg/record"
)

// TestNoTriggerEnabled is spec.md §8 invariant 6's first half: with
// every trigger disabled, verification reports exactly
// NO_TRIGGER_ENABLED and nothing else.
func TestNoTriggerEnabled(t *testing.T) {
	rec := record.Default()
	errs := Run(Default(), &rec)
	if errs.Len() != 1 {
		t.Fatalf("errors = %v, want exactly one", errs.Codes())
	}
	c := errs.Codes()[0]
	if c.Kind() != errcode.NoTriggerEnabled || c.ID() != int(TriggerRequirement) {
		t.Fatalf("got %v, want NO_TRIGGER_ENABLED carrying rule id %d", c, TriggerRequirement)
	}
}

// TestNoDataDestination is invariant 6's second half: exactly one
// trigger enabled with no sinks reports exactly
// NO_DATA_DESTINATION_ENABLED for that trigger.
func TestNoDataDestination(t *testing.T) {
	rec := record.Default()
	rec.Light.Enabled = true
	errs := Run(Default(), &rec)
	if errs.Len() != 1 {
		t.Fatalf("errors = %v, want exactly one", errs.Codes())
	}
	c := errs.Codes()[0]
	if c.Kind() != errcode.NoDataDestinationEnabled || c.ID() != int(LightTrigger) {
		t.Fatalf("got %v, want NO_DATA_DESTINATION_ENABLED carrying rule id %d", c, LightTrigger)
	}
}

func TestPasses(t *testing.T) {
	rec := record.Default()
	rec.Acceleration.Enabled = true
	rec.Acceleration.WriteTo.SD = true
	errs := Run(Default(), &rec)
	if errs.Any() {
		t.Fatalf("unexpected verification errors: %v", errs.Codes())
	}
}
