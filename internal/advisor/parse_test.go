package advisor

import "testing"

type item struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
}

func TestExtractJSONArrayPlain(t *testing.T) {
	var got []item
	err := ExtractJSONArray(`[{"type":"budgeting","suggestion":"Optimize Budget"}]`, &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Type != "budgeting" {
		t.Errorf("got %+v", got)
	}
}

func TestExtractJSONArrayFenced(t *testing.T) {
	text := "```json\n[{\"type\":\"tracking\",\"suggestion\":\"Track Progress\"}]\n```"
	var got []item
	if err := ExtractJSONArray(text, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Suggestion != "Track Progress" {
		t.Errorf("got %+v", got)
	}
}

func TestExtractJSONArraySurroundingProse(t *testing.T) {
	text := "Here are your strategies:\n[{\"type\":\"automation\",\"suggestion\":\"Automate Savings\"}]\nGood luck!"
	var got []item
	if err := ExtractJSONArray(text, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Type != "automation" {
		t.Errorf("got %+v", got)
	}
}

func TestExtractJSONArrayGarbage(t *testing.T) {
	var got []item
	if err := ExtractJSONArray("I cannot help with that.", &got); err == nil {
		t.Error("expected error for non-JSON response")
	}
	if len(got) != 0 {
		t.Errorf("dst mutated on failure: %+v", got)
	}
}
