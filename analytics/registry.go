package analytics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hasbyte1/figstats/ledger"
)

// ErrQuestionNotFound is returned when an unregistered question name is run.
var ErrQuestionNotFound = errors.New("analytics: question not found")

// ErrEmptyQuestionName is returned by [Register] for an empty name.
var ErrEmptyQuestionName = errors.New("analytics: question name must not be empty")

// Answer is the result of one question. Text is the human-readable report
// line; Value is what the JSON renderer emits.
type Answer struct {
	Question string `json:"question"`
	Text     string `json:"-"`
	Value    any    `json:"value"`
}

// QuestionFunc answers a question over ds.
type QuestionFunc func(ds ledger.Dataset, th Thresholds) Answer

// Question is a named, described [QuestionFunc].
type Question struct {
	Name        string
	Description string
	Answer      QuestionFunc
}

// questionRegistry is the package-level, goroutine-safe question store.
// order keeps registration order so reports are stable.
var questionRegistry struct {
	mu        sync.RWMutex
	questions map[string]Question
	order     []string
}

func init() {
	questionRegistry.questions = make(map[string]Question)
	registerBuiltins()
}

// Register adds q to the registry. A question registered under an existing
// name replaces it and keeps its position. Safe to call from multiple
// goroutines.
func Register(q Question) error {
	if q.Name == "" {
		return ErrEmptyQuestionName
	}
	if q.Answer == nil {
		return fmt.Errorf("analytics: question %q has no answer func", q.Name)
	}
	questionRegistry.mu.Lock()
	defer questionRegistry.mu.Unlock()
	if _, ok := questionRegistry.questions[q.Name]; !ok {
		questionRegistry.order = append(questionRegistry.order, q.Name)
	}
	questionRegistry.questions[q.Name] = q
	return nil
}

// Unregister removes the named question and reports whether it existed.
func Unregister(name string) bool {
	questionRegistry.mu.Lock()
	defer questionRegistry.mu.Unlock()
	if _, ok := questionRegistry.questions[name]; !ok {
		return false
	}
	delete(questionRegistry.questions, name)
	for i, n := range questionRegistry.order {
		if n == name {
			questionRegistry.order = append(questionRegistry.order[:i], questionRegistry.order[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the question registered under name.
func Lookup(name string) (Question, error) {
	questionRegistry.mu.RLock()
	defer questionRegistry.mu.RUnlock()
	q, ok := questionRegistry.questions[name]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, name)
	}
	return q, nil
}

// Questions returns every registered question in registration order.
func Questions() []Question {
	questionRegistry.mu.RLock()
	defer questionRegistry.mu.RUnlock()
	out := make([]Question, 0, len(questionRegistry.order))
	for _, name := range questionRegistry.order {
		out = append(out, questionRegistry.questions[name])
	}
	return out
}

// Names returns the registered question names in registration order.
func Names() []string {
	questionRegistry.mu.RLock()
	defer questionRegistry.mu.RUnlock()
	out := make([]string, len(questionRegistry.order))
	copy(out, questionRegistry.order)
	return out
}

// Run answers the named question over ds.
func Run(name string, ds ledger.Dataset, th Thresholds) (Answer, error) {
	q, err := Lookup(name)
	if err != nil {
		return Answer{}, err
	}
	return q.Answer(ds, th), nil
}
