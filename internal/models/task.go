package models

import "encoding/json"

// Task represents a single entry in one of the lists
type Task struct {
	ID         string   `json:"-"`
	Text       string   `json:"text"`
	Category   Category `json:"category"`
	IsComplete bool     `json:"isComplete"`
}

// EditState is the single in-progress edit.
// TaskID always refers to a task present in the collection.
type EditState struct {
	TaskID string
	Draft  string
}

// taskBody is the stored form of a task. Working is the legacy flag
// written before categories had names.
type taskBody struct {
	Text       string    `json:"text"`
	Category   *Category `json:"category,omitempty"`
	Working    *bool     `json:"working,omitempty"`
	IsComplete bool      `json:"isComplete"`
}

// UnmarshalJSON decodes a task body, falling back to the legacy working flag
// when no category is present
func (t *Task) UnmarshalJSON(data []byte) error {
	var body taskBody
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	t.Text = body.Text
	t.IsComplete = body.IsComplete
	t.Category = CategoryWork
	switch {
	case body.Category != nil:
		t.Category = *body.Category
	case body.Working != nil && !*body.Working:
		t.Category = CategoryTravel
	}
	return nil
}
