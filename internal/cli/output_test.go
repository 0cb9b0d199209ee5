package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithIDs struct {
	IDs []string
}

func (m mockDataWithIDs) GetIDs() []string {
	return m.IDs
}

type mockHuman struct{}

func (mockHuman) Human() string {
	return "human readable"
}

func newTestFormatter(json, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: json, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(map[string]any{"test": "value"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	if data := result["data"].(map[string]any); data["test"] != "value" {
		t.Errorf("Expected data.test to be 'value', got %v", data["test"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"single id", mockDataWithID{ID: "abc123", Name: "x"}, "abc123\n"},
		{"id list", mockDataWithIDs{IDs: []string{"a", "b"}}, "a\nb\n"},
		{"empty id list", mockDataWithIDs{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestOutputFormatter_QuietModeGetIDPrecedence(t *testing.T) {
	t.Run("Quiet takes precedence over JSON when GetID exists", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, true)
		_ = f.Success(mockDataWithID{ID: "abc"})
		if out.String() != "abc\n" {
			t.Errorf("output = %q, want the bare id", out.String())
		}
	})

	t.Run("Quiet without GetID falls through to JSON", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, true)
		_ = f.Success(map[string]any{"k": "v"})
		if !strings.Contains(out.String(), `"success":true`) {
			t.Errorf("output = %q, want JSON", out.String())
		}
	})
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	_ = f.Success(mockHuman{})
	if out.String() != "human readable\n" {
		t.Errorf("output = %q, want the Human() text", out.String())
	}

	f, out, _ = newTestFormatter(false, false)
	_ = f.Success(nil)
	if out.Len() != 0 {
		t.Errorf("nil data printed %q", out.String())
	}
}

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		f, out, errOut := newTestFormatter(true, false)
		_ = f.ErrorWithSuggestion("TASK_NOT_FOUND", "task missing", "list first")

		var result map[string]any
		if err := json.Unmarshal(out.Bytes(), &result); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if result["success"] != false {
			t.Error("Expected success to be false")
		}
		errData := result["error"].(map[string]any)
		if errData["code"] != "TASK_NOT_FOUND" || errData["suggestion"] != "list first" {
			t.Errorf("error = %v", errData)
		}
		if errOut.Len() != 0 {
			t.Errorf("JSON mode wrote to stderr: %q", errOut.String())
		}
	})

	t.Run("human", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		_ = f.Error("TASK_NOT_FOUND", "task missing")

		if out.Len() != 0 {
			t.Errorf("human error wrote to stdout: %q", out.String())
		}
		if !strings.Contains(errOut.String(), "Error: task missing") {
			t.Errorf("stderr = %q", errOut.String())
		}
		if strings.Contains(errOut.String(), "Suggestion") {
			t.Error("empty suggestion was printed")
		}
	})
}
