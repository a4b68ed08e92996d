// Package verify implements the cross-field verification rules run
// over a fully applied master record: post-conditions that no single
// setting's validator could check on its own.
//
// Grounded on backup/backup.go's precondition checks
// (ErrDescriptorTooLarge and friends), run once a Descriptor has been
// fully assembled, before it's handed back to the caller.
package verify

import (
	"aethercfg/errbuf"
	"aethercfg/errcode"
	"aethercfg/record"
)

// RuleID is the dense verification-rule identifier, per spec.md §6's
// "unspecified, trigger_requirement, time_trigger, light_trigger,
// acceleration_trigger, orientation_trigger" enumeration.
type RuleID int

const (
	Unspecified RuleID = iota
	TriggerRequirement
	TimeTrigger
	LightTrigger
	AccelerationTrigger
	OrientationTrigger
)

// Predicate reports whether rec satisfies a rule; on failure it
// returns the verification-category errcode.Kind to report.
type Predicate func(rec *record.MasterRecord) (kind errcode.Kind, ok bool)

// Rule pairs a stable identifier with its predicate.
type Rule struct {
	ID        RuleID
	Predicate Predicate
}

func dataDestination(enabled, lora, sd bool) (errcode.Kind, bool) {
	if !enabled {
		return 0, true
	}
	if lora || sd {
		return 0, true
	}
	return errcode.NoDataDestinationEnabled, false
}

// Default returns the five default verification rules from spec.md
// §4.8.
func Default() []Rule {
	return []Rule{
		{TriggerRequirement, func(rec *record.MasterRecord) (errcode.Kind, bool) {
			if rec.AnyTriggerEnabled() {
				return 0, true
			}
			return errcode.NoTriggerEnabled, false
		}},
		{TimeTrigger, func(rec *record.MasterRecord) (errcode.Kind, bool) {
			return dataDestination(rec.Time.Enabled, rec.Time.WriteTo.LoRa, rec.Time.WriteTo.SD)
		}},
		{LightTrigger, func(rec *record.MasterRecord) (errcode.Kind, bool) {
			return dataDestination(rec.Light.Enabled, rec.Light.WriteTo.LoRa, rec.Light.WriteTo.SD)
		}},
		{AccelerationTrigger, func(rec *record.MasterRecord) (errcode.Kind, bool) {
			return dataDestination(rec.Acceleration.Enabled, rec.Acceleration.WriteTo.LoRa, rec.Acceleration.WriteTo.SD)
		}},
		{OrientationTrigger, func(rec *record.MasterRecord) (errcode.Kind, bool) {
			return dataDestination(rec.Orientation.Enabled, rec.Orientation.WriteTo.LoRa, rec.Orientation.WriteTo.SD)
		}},
	}
}

// Run evaluates every rule against rec and returns a buffer holding
// one {kind, rule-id} verification error per failed rule.
func Run(rules []Rule, rec *record.MasterRecord) *errbuf.Buffer {
	errs := errbuf.New(len(rules))
	for _, r := range rules {
		if kind, ok := r.Predicate(rec); !ok {
			errs.Append(errcode.WithID(errcode.Verification, kind, int(r.ID)))
		}
	}
	return errs
}
