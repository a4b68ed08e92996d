// Package config implements the orchestrator binding the tag-tree or
// bit-frame parser, the setting handler, and the verification rules
// into the single entry point external callers use: process one
// payload, get back a trusted record or a failure.
//
// Grounded on cmd/controller/main.go's run() in the teacher repo: open
// the next input, hand it to the processing pipeline, emit whatever
// the pipeline reports through an injected logger, loop.
package config

import (
	"fmt"

	"aethercfg/bitframe"
	"aethercfg/errbuf"
	"aethercfg/record"
	"aethercfg/schema"
	"aethercfg/setting"
	"aethercfg/settinghandler"
	"aethercfg/tagtree"
	"aethercfg/verify"
)

// Form selects which parser a payload is run through.
type Form int

const (
	TagTree Form = iota
	BitFrame
)

// Sink receives one rendered diagnostic line per reported error, the
// injected-logger interface named in spec.md §1/§9.
type Sink func(line string)

// Handler is the config-processing orchestrator: one schema, one set
// of verification rules, one sink, reused across many Process calls.
type Handler struct {
	schema *schema.Schema
	rules  []verify.Rule
	sink   Sink
}

// New constructs a Handler. A nil sink is replaced with a no-op.
func New(sch *schema.Schema, rules []verify.Rule, sink Sink) *Handler {
	if sink == nil {
		sink = func(string) {}
	}
	return &Handler{schema: sch, rules: rules, sink: sink}
}

// Process runs payload (in the given Form) through the full pipeline
// described in spec.md §4.9: parse, validate+apply, then verify only
// if parsing and validation were clean. Every setting's captured
// buffer is cleared first, so no value from an earlier payload carries
// over into this run. On any failure rec is reset
// to defaults and its Status is set to StatusFailure; every
// accumulated error is emitted to the sink as a hex-formatted,
// prefixed line. Process reports whether the run succeeded.
func (h *Handler) Process(payload []byte, form Form, rec *record.MasterRecord) bool {
	for _, s := range h.schema.Settings() {
		s.Reset()
	}

	var parseErrs *errbuf.Buffer
	var mode setting.Mode
	switch form {
	case BitFrame:
		mode = setting.MessageMode
		parseErrs = bitframe.Parse(payload, h.schema)
	default:
		mode = setting.FileMode
		parseErrs = tagtree.Parse(payload, h.schema)
	}

	sh := settinghandler.New(h.schema, mode)
	sh.ValidateAndApply(rec)

	if parseErrs.Any() || sh.HasErrors() {
		h.emit(parseErrs)
		h.emit(sh.UnsetErrors())
		h.emit(sh.InvalidValueErrors())
		rec.Reset()
		rec.Status = record.StatusFailure
		return false
	}

	verifyErrs := verify.Run(h.rules, rec)
	if verifyErrs.Any() {
		h.emit(verifyErrs)
		rec.Reset()
		rec.Status = record.StatusFailure
		return false
	}

	rec.Status = record.StatusOK
	return true
}

func (h *Handler) emit(b *errbuf.Buffer) {
	for _, c := range b.Codes() {
		h.sink(fmt.Sprintf("aethercfg: rejected config: %s", c.Error()))
	}
}
