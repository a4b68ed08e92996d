package tagtree

import (
	"testing"

	"aethercfg/bitspan"
	"aethercfg/errcode"
	"aethercfg/record"
	"aethercfg/schema"
	"aethercfg/setting"
	"aethercfg/tagpath"
)

func noop(setting.Data, *record.MasterRecord) {}

func mustKind(t *testing.T, errs []errcode.Code, want errcode.Kind) errcode.Code {
	t.Helper()
	for _, c := range errs {
		if c.Kind() == want {
			return c
		}
	}
	t.Fatalf("no error of kind %v in %v", want, errs)
	return 0
}

func TestEmptyConfig(t *testing.T) {
	sch := schema.Default()
	errs := Parse(nil, sch)
	if errs.Len() != 1 {
		t.Fatalf("Parse(nil) errors = %v, want exactly EMPTY_CONFIG", errs.Codes())
	}
	c := mustKind(t, errs.Codes(), errcode.EmptyConfig)
	line, col := c.Position()
	if line != 1 || col != 1 {
		t.Fatalf("EMPTY_CONFIG position = (%d,%d), want (1,1)", line, col)
	}
}

func TestNoTagsFound(t *testing.T) {
	sch := schema.Default()
	errs := Parse([]byte("just plain text, no tags"), sch)
	mustKind(t, errs.Codes(), errcode.NoTagsFound)
}

// TestUnbalanced reproduces spec.md §8's S2 scenario: "<a><b></a>"
// yields MISSING_CLOSING_TAG(1) and no NO_TAGS_FOUND (tags were seen).
func TestUnbalanced(t *testing.T) {
	sch := schema.New(
		setting.New(1, tagpath.New("a"), bitspan.None, setting.Optional, setting.Name(), noop),
	)
	errs := Parse([]byte("<a><b></a>"), sch)
	c := mustKind(t, errs.Codes(), errcode.MissingClosingTag)
	if c.Int24() != 1 {
		t.Fatalf("MISSING_CLOSING_TAG data = %d, want 1", c.Int24())
	}
	for _, e := range errs.Codes() {
		if e.Kind() == errcode.NoTagsFound {
			t.Fatal("NO_TAGS_FOUND should not fire when tags were seen")
		}
	}
}

// TestValueTooLong reproduces the parsing half of S3: a 33-byte value
// raises EXCEEDS_MAX_VALUE_LENGTH and the setting's buffer still
// receives the value truncated to 32 bytes.
func TestValueTooLong(t *testing.T) {
	sch := schema.New(
		setting.New(1, tagpath.New("v"), bitspan.None, setting.Optional, setting.Name(), noop),
	)
	long := make([]byte, 33)
	for i := range long {
		long[i] = 'a'
	}
	doc := append(append([]byte("<v>"), long...), []byte("</v>")...)
	errs := Parse(doc, sch)
	mustKind(t, errs.Codes(), errcode.ExceedsMaxValueLength)

	s := sch.Settings()[0]
	if len(s.Buffer()) != setting.MaxBufferLen {
		t.Fatalf("buffer len = %d, want %d (truncated)", len(s.Buffer()), setting.MaxBufferLen)
	}
}

// TestHappyPath adapts S1 to the default schema's flattened
// write-to-lora/write-to-sd leaves (see DESIGN.md).
func TestHappyPath(t *testing.T) {
	sch := schema.Default()
	doc := []byte("<aether><trigger><time><enabled>1</enabled>" +
		"<interval-ms>5000</interval-ms>" +
		"<write-to-lora>1</write-to-lora><write-to-sd>0</write-to-sd>" +
		"</time></trigger></aether>")
	errs := Parse(doc, sch)
	if errs.Any() {
		t.Fatalf("unexpected parse errors: %v", errs.Codes())
	}

	byID := func(id setting.ID) *setting.Setting {
		for _, s := range sch.Settings() {
			if s.ID() == id {
				return s
			}
		}
		t.Fatalf("no setting with id %d", id)
		return nil
	}

	if got := string(byID(schema.TimeTriggerEnabled).Buffer()); got != "1" {
		t.Fatalf("time_trigger_enabled buffer = %q, want %q", got, "1")
	}
	if got := string(byID(schema.TimeTriggerIntervalMS).Buffer()); got != "5000" {
		t.Fatalf("time_trigger_interval_ms buffer = %q, want %q", got, "5000")
	}
	if got := string(byID(schema.TimeTriggerWriteToLoRa).Buffer()); got != "1" {
		t.Fatalf("time_trigger_write_to_lora buffer = %q, want %q", got, "1")
	}
	if got := string(byID(schema.TimeTriggerWriteToSD).Buffer()); got != "0" {
		t.Fatalf("time_trigger_write_to_sd buffer = %q, want %q", got, "0")
	}
}

// TestLaterWins checks that a setting whose tag occurs twice in one
// document keeps the value of its later occurrence. It uses a single
// setting, so it does not cover selection among several settings that
// match at the same depth.
func TestLaterWins(t *testing.T) {
	sch := schema.New(
		setting.New(1, tagpath.New("v"), bitspan.None, setting.Optional, setting.Name(), noop),
	)
	errs := Parse([]byte("<v>first</v><v>second</v>"), sch)
	if errs.Any() {
		t.Fatalf("unexpected parse errors: %v", errs.Codes())
	}
	if got := string(sch.Settings()[0].Buffer()); got != "second" {
		t.Fatalf("buffer = %q, want %q", got, "second")
	}
}

// TestIdempotence is spec.md §8 invariant 3: parsing the same
// document twice against a fresh schema produces identical error
// buffers and identical setting buffers.
func TestIdempotence(t *testing.T) {
	doc := []byte("<aether><trigger><time><enabled>1</enabled></time></trigger></aether>")

	run := func() (errcode.Code, string) {
		sch := schema.Default()
		errs := Parse(doc, sch)
		var c errcode.Code
		if errs.Any() {
			c = errs.Codes()[0]
		}
		for _, s := range sch.Settings() {
			if s.ID() == schema.TimeTriggerEnabled {
				return c, string(s.Buffer())
			}
		}
		t.Fatal("unreachable")
		return 0, ""
	}

	c1, v1 := run()
	c2, v2 := run()
	if c1 != c2 || v1 != v2 {
		t.Fatalf("non-idempotent parse: (%v,%q) vs (%v,%q)", c1, v1, c2, v2)
	}
}
