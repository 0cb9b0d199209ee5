package testutil

import (
	"sync"
)

// SavedValue is one write captured by RecordingPersister
type SavedValue struct {
	Key   string
	Value string
}

// RecordingPersister records every Save synchronously for assertions
type RecordingPersister struct {
	mu    sync.Mutex
	saves []SavedValue
	Err   error // returned from Save when set
}

// NewRecordingPersister creates an empty RecordingPersister
func NewRecordingPersister() *RecordingPersister {
	return &RecordingPersister{saves: []SavedValue{}}
}

// Save records the write and returns Err
func (p *RecordingPersister) Save(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = append(p.saves, SavedValue{Key: key, Value: value})
	return p.Err
}

// Saves returns a copy of every recorded write
func (p *RecordingPersister) Saves() []SavedValue {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]SavedValue, len(p.saves))
	copy(out, p.saves)
	return out
}

// SavesFor returns the recorded values for key in order
func (p *RecordingPersister) SavesFor(key string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	values := []string{}
	for _, s := range p.saves {
		if s.Key == key {
			values = append(values, s.Value)
		}
	}
	return values
}

// Last returns the newest value saved under key
func (p *RecordingPersister) Last(key string) (string, bool) {
	values := p.SavesFor(key)
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Reset forgets all recorded writes
func (p *RecordingPersister) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = []SavedValue{}
}
