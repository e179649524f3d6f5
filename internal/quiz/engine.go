package quiz

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrInsufficientQuestions is returned by Start when the catalog holds
	// fewer questions than requested.
	ErrInsufficientQuestions = errors.New("quiz: not enough questions in catalog")

	// ErrInvalidTransition is returned when an engine method is called out of
	// sequence, e.g. answering twice or advancing before submitting. It
	// signals a controller bug, not bad user input.
	ErrInvalidTransition = errors.New("quiz: invalid state transition")
)

type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"-"`
	Explanation string   `json:"-"`
}

type AnswerRecord struct {
	Question  string `json:"question"`
	Selected  string `json:"selected"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
}

// Engine walks a session through a randomly drawn subset of questions:
// NotStarted -> InProgress(unanswered) -> InProgress(answered) -> next
// question or Completed. Every question must be submitted exactly once
// before advancing.
type Engine struct {
	rng        *rand.Rand
	started    bool
	questions  []Question
	current    int
	score      int
	submitted  bool
	transcript []AnswerRecord
}

func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Start draws k distinct questions uniformly at random without replacement
// and resets score, index and transcript.
func (e *Engine) Start(catalog []Question, k int) error {
	if len(catalog) < k {
		return ErrInsufficientQuestions
	}
	selected := make([]Question, 0, k)
	for _, i := range e.rng.Perm(len(catalog))[:k] {
		selected = append(selected, catalog[i])
	}
	e.started = true
	e.questions = selected
	e.current = 0
	e.score = 0
	e.submitted = false
	e.transcript = nil
	return nil
}

// SubmitAnswer scores the selected option against the current question and
// appends the result to the transcript. A second submission for the same
// question fails without touching score or transcript.
func (e *Engine) SubmitAnswer(selected string) (AnswerRecord, error) {
	if !e.started || e.Completed() || e.submitted {
		return AnswerRecord{}, ErrInvalidTransition
	}
	q := e.questions[e.current]
	correct := q.Options[q.Correct]
	record := AnswerRecord{
		Question:  q.Text,
		Selected:  selected,
		Correct:   correct,
		IsCorrect: selected == correct,
	}
	if record.IsCorrect {
		e.score++
	}
	e.transcript = append(e.transcript, record)
	e.submitted = true
	return record, nil
}

// Advance moves to the next question. Only legal after a submission; once the
// last question is passed the engine is Completed and further calls fail.
func (e *Engine) Advance() error {
	if !e.started || e.Completed() || !e.submitted {
		return ErrInvalidTransition
	}
	e.current++
	e.submitted = false
	return nil
}

// Reset returns the engine to its pre-start state. Callers that want the
// transcript must read it before resetting.
func (e *Engine) Reset() {
	e.started = false
	e.questions = nil
	e.current = 0
	e.score = 0
	e.submitted = false
	e.transcript = nil
}

func (e *Engine) Started() bool { return e.started }

func (e *Engine) Completed() bool {
	return e.started && e.current >= len(e.questions)
}

// AwaitingAdvance reports whether the current question has been answered but
// not yet advanced past.
func (e *Engine) AwaitingAdvance() bool { return e.submitted }

// Current returns the question at the cursor.
func (e *Engine) Current() (Question, error) {
	if !e.started || e.Completed() {
		return Question{}, ErrInvalidTransition
	}
	return e.questions[e.current], nil
}

func (e *Engine) CurrentIndex() int { return e.current }

func (e *Engine) Score() int { return e.score }

func (e *Engine) Total() int { return len(e.questions) }

func (e *Engine) Transcript() []AnswerRecord {
	out := make([]AnswerRecord, len(e.transcript))
	copy(out, e.transcript)
	return out
}
