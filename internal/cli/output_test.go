package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hyperjump/kotae/internal/models"
)

func TestWriteAnswer_text(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAnswer(&buf, &models.AskResponse{Answer: "blue"}, OutputText)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "blue\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteAnswer_json(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAnswer(&buf, &models.AskResponse{Answer: "blue"}, OutputJSON)
	if err != nil {
		t.Fatal(err)
	}
	var out models.AskResponse
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Answer != "blue" {
		t.Errorf("got %q", out.Answer)
	}
}
