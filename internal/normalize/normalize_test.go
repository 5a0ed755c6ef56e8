package normalize_test

import (
	"testing"

	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"AlreadyClean", `{"a":1}`, `{"a":1}`},
		{"FencedWithLanguageTag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"FencedWithoutTag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"SurroundingWhitespace", "  \n{\"a\":1}\t ", `{"a":1}`},
		{"FenceInTheMiddle", "{\"a\":1}```json{\"b\":2}```", `{"a":1}{"b":2}`},
		{"Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalize.Clean(tc.in); got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	in := "```json\n{\"questions\":[]}\n```"
	once := normalize.Clean(in)
	twice := normalize.Clean(once)
	if once != twice {
		t.Errorf("Clean is not idempotent: %q vs %q", once, twice)
	}
}

func TestExtractObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"LeadingProse", `Sure! Here's your content: {"foo":1}`, `{"foo":1}`},
		{"TrailingProse", `{"foo":1} Hope that helps!`, `{"foo":1}`},
		{"BothSides", "Here you go:\n```json\n{\"foo\":1}\n```\nEnjoy.", `{"foo":1}`},
		{"NoBraces", "I cannot help with that.", "I cannot help with that."},
		{"NestedBraces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalize.ExtractObject(tc.in); got != tc.want {
				t.Errorf("ExtractObject(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestObject(t *testing.T) {
	t.Run("FencedObjectWithProse", func(t *testing.T) {
		var out struct {
			Foo int `json:"foo"`
		}
		raw := "Of course! ```json\n{\"foo\": 7}\n``` Let me know if you need more."
		if err := normalize.Object(raw, &out); err != nil {
			t.Fatalf("Object failed: %v", err)
		}
		if out.Foo != 7 {
			t.Errorf("expected foo=7, got %d", out.Foo)
		}
	})

	t.Run("PureProseFails", func(t *testing.T) {
		var out map[string]interface{}
		if err := normalize.Object("I cannot help with that.", &out); err == nil {
			t.Error("expected parse error for pure prose")
		}
	})

	t.Run("TruncatedJSONFails", func(t *testing.T) {
		var out map[string]interface{}
		if err := normalize.Object(`{"questions":[{"id":"q1"`, &out); err == nil {
			t.Error("expected parse error for truncated JSON")
		}
	})

	t.Run("EmptyInputFails", func(t *testing.T) {
		var out map[string]interface{}
		if err := normalize.Object("", &out); err == nil {
			t.Error("expected parse error for empty input")
		}
	})
}

func TestArray(t *testing.T) {
	t.Run("FencedArray", func(t *testing.T) {
		var out []int
		if err := normalize.Array("```json\n[1,2,3]\n```", &out); err != nil {
			t.Fatalf("Array failed: %v", err)
		}
		if len(out) != 3 {
			t.Errorf("expected 3 elements, got %d", len(out))
		}
	})

	t.Run("ObjectExtractionNotApplied", func(t *testing.T) {
		// Prose around an array is not trimmed; array endpoints rely on the
		// model honoring the format, with their own fallback on failure.
		var out []int
		if err := normalize.Array("here: [1,2,3]", &out); err == nil {
			t.Error("expected parse error, brace trimming must not apply to arrays")
		}
	})
}
