// Package settinghandler implements the validate-all/apply-all loop
// that drives every setting in a schema to a validated, applied
// state (or buckets its failure by severity).
//
// Grounded on bc/urtypes.Parse's aggregate-building loop in the
// teacher repo: iterate a fixed set of typed slots, decode each,
// either fold a decoded value into the result or record why it
// failed, and keep going rather than stop at the first problem.
package settinghandler

import (
	"errors"

	"aethercfg/errbuf"
	"aethercfg/errcode"
	"aethercfg/record"
	"aethercfg/schema"
	"aethercfg/setting"
)

// Handler drives one schema's settings through validate+apply for a
// single processing run.
type Handler struct {
	schema             *schema.Schema
	mode               setting.Mode
	unsetErrors        *errbuf.Buffer
	invalidValueErrors *errbuf.Buffer
}

// New constructs a Handler bound to sch, validating in the given mode.
func New(sch *schema.Schema, mode setting.Mode) *Handler {
	n := len(sch.Settings())
	return &Handler{
		schema:             sch,
		mode:               mode,
		unsetErrors:        errbuf.New(n),
		invalidValueErrors: errbuf.New(n),
	}
}

// ValidateAndApply visits every setting in schema-declaration order,
// validating and applying it on success, or bucketing the failure by
// severity: an unset optional setting is ignored, an unset required
// setting goes to UnsetErrors, anything else goes to
// InvalidValueErrors. Both error buffers are reset at the start of
// the run.
//
// Declaration order is load-bearing: an applier may read record state
// written by an earlier applier in the same run (spec.md §4.7,
// §9 Open Question 4).
func (h *Handler) ValidateAndApply(rec *record.MasterRecord) {
	h.unsetErrors.Reset()
	h.invalidValueErrors.Reset()

	for _, s := range h.schema.Settings() {
		err := s.Validate(h.mode)
		if err == nil {
			s.Apply(rec)
			continue
		}

		var verr *setting.ValidationError
		if !errors.As(err, &verr) {
			h.invalidValueErrors.Append(errcode.WithID(errcode.Validation, errcode.KindUnspecified, int(s.ID())))
			continue
		}
		if verr.Kind == errcode.SettingUnset {
			if s.Necessity() == setting.Optional {
				continue
			}
			h.unsetErrors.Append(errcode.WithID(errcode.Validation, errcode.SettingUnset, int(s.ID())))
			continue
		}
		h.invalidValueErrors.Append(errcode.WithID(errcode.Validation, verr.Kind, int(s.ID())))
	}
}

// HasErrors reports whether the last run produced any error.
func (h *Handler) HasErrors() bool {
	return h.unsetErrors.Any() || h.invalidValueErrors.Any()
}

// UnsetErrors returns the buffer of required-but-unset settings from
// the last run.
func (h *Handler) UnsetErrors() *errbuf.Buffer { return h.unsetErrors }

// InvalidValueErrors returns the buffer of settings that failed
// validation for a reason other than being unset, from the last run.
func (h *Handler) InvalidValueErrors() *errbuf.Buffer { return h.invalidValueErrors }
