package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskCollection maps task ids to tasks and remembers insertion order.
// The zero value is an empty collection ready to use.
type TaskCollection struct {
	order []string
	byID  map[string]Task
}

// NewTaskCollection creates a collection holding tasks in the given order
func NewTaskCollection(tasks ...Task) (*TaskCollection, error) {
	c := &TaskCollection{}
	for _, task := range tasks {
		if err := c.Add(task); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Len returns the number of tasks
func (c *TaskCollection) Len() int {
	return len(c.order)
}

// Has reports whether id is present
func (c *TaskCollection) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Get returns the task with the given id
func (c *TaskCollection) Get(id string) (Task, bool) {
	task, ok := c.byID[id]
	return task, ok
}

// Add appends a task. The id must be non-empty and unused.
func (c *TaskCollection) Add(task Task) error {
	if task.ID == "" {
		return ErrEmptyTaskID
	}
	if c.Has(task.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateTaskID, task.ID)
	}
	if c.byID == nil {
		c.byID = make(map[string]Task)
	}
	c.byID[task.ID] = task
	c.order = append(c.order, task.ID)
	return nil
}

// Update applies fn to the task with the given id in place.
// ID and Category are restored after fn runs since neither may change.
func (c *TaskCollection) Update(id string, fn func(*Task)) bool {
	task, ok := c.byID[id]
	if !ok {
		return false
	}
	category := task.Category
	fn(&task)
	task.ID = id
	task.Category = category
	c.byID[id] = task
	return true
}

// Remove deletes the task with the given id
func (c *TaskCollection) Remove(id string) bool {
	if !c.Has(id) {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every task in insertion order
func (c *TaskCollection) All() []Task {
	tasks := make([]Task, 0, len(c.order))
	for _, id := range c.order {
		tasks = append(tasks, c.byID[id])
	}
	return tasks
}

// InCategory returns the tasks of one category in insertion order
func (c *TaskCollection) InCategory(category Category) []Task {
	tasks := []Task{}
	for _, id := range c.order {
		if task := c.byID[id]; task.Category == category {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Clone returns an independent copy
func (c *TaskCollection) Clone() *TaskCollection {
	clone := &TaskCollection{
		order: make([]string, len(c.order)),
		byID:  make(map[string]Task, len(c.byID)),
	}
	copy(clone.order, c.order)
	for id, task := range c.byID {
		clone.byID[id] = task
	}
	return clone
}

// Equal reports whether both collections hold the same tasks in the same order
func (c *TaskCollection) Equal(other *TaskCollection) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, id := range c.order {
		if other.order[i] != id || other.byID[id] != c.byID[id] {
			return false
		}
	}
	return true
}

// MarshalJSON writes the collection as an object keyed by id, in insertion order
func (c *TaskCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(c.byID[id])
		if err != nil {
			return nil, fmt.Errorf("failed to encode task %s: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by id. Document order becomes insertion order.
// null decodes to an empty collection.
func (c *TaskCollection) UnmarshalJSON(data []byte) error {
	*c = TaskCollection{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCollection, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object", ErrMalformedCollection)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedCollection, err)
		}
		id, ok := tok.(string)
		if !ok || id == "" {
			return fmt.Errorf("%w: bad key %v", ErrMalformedCollection, tok)
		}

		var task Task
		if err := dec.Decode(&task); err != nil {
			return fmt.Errorf("%w: task %s: %v", ErrMalformedCollection, id, err)
		}
		task.ID = id

		// a repeated key keeps its first position and its last value
		if c.Has(id) {
			c.byID[id] = task
			continue
		}
		if err := c.Add(task); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCollection, err)
	}
	return nil
}
