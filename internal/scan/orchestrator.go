// Package scan drives the receipt-recognition pipeline: image preparation,
// text recognition, and extraction, with stage-labeled progress published to
// a channel.
package scan

import (
	"context"
	"sync"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
	"github.com/jpalmeida/household-scanner-service/internal/extract"
	"github.com/jpalmeida/household-scanner-service/internal/imaging"
	"github.com/jpalmeida/household-scanner-service/internal/ocr"
)

// State is the orchestrator's lifecycle position for one recognition run.
type State int

// Orchestrator states
const (
	StateIdle State = iota
	StatePreparing
	StateRecognizing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StateRecognizing:
		return "recognizing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress is one stage-labeled progress snapshot.
type Progress struct {
	Stage    string  `json:"stage"`
	Fraction float64 `json:"fraction"`
}

// Result carries the parsed receipt together with the raw recognized text and
// the engine-reported confidence.
type Result struct {
	Receipt    domain.ParsedReceipt
	Text       string
	Confidence int
}

// Orchestrator runs the Preparing -> Recognizing sequence over one captured
// image per invocation. Invocations share no mutable state; concurrent runs
// are independent and the caller discards stale results.
type Orchestrator struct {
	engine       ocr.Engine
	languages    []string
	maxDimension int
}

// NewOrchestrator builds an orchestrator around a recognition engine.
// languages defaults to the fixed bilingual hint set; maxDimension <= 0
// disables the pre-recognition downscale.
func NewOrchestrator(engine ocr.Engine, languages []string, maxDimension int) *Orchestrator {
	if len(languages) == 0 {
		languages = ocr.DefaultLanguages
	}
	return &Orchestrator{
		engine:       engine,
		languages:    languages,
		maxDimension: maxDimension,
	}
}

// Job is one in-flight recognition run. Its progress channel is closed after
// exactly one terminal outcome; Wait returns that outcome. There is no
// cancellation primitive: callers "cancel" by abandoning the job.
type Job struct {
	progress chan Progress
	done     chan struct{}

	mu           sync.Mutex
	state        State
	lastFraction float64
	result       *Result
	err          error
}

// Progress returns the channel progress snapshots are published to. Snapshots
// are delivered in non-decreasing fraction order; a slow consumer loses
// intermediate snapshots rather than stalling recognition.
func (j *Job) Progress() <-chan Progress {
	return j.progress
}

// State reports the job's current lifecycle state.
func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Wait blocks until the job reaches a terminal state and returns its outcome.
// The error of a failed run is the recognition engine's error, verbatim.
func (j *Job) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-j.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result, j.err
}

func (j *Job) setState(s State) {
	j.mu.Lock()
	j.state = s
	j.mu.Unlock()
}

// publish forwards a snapshot, clamping the fraction so the delivered
// sequence never decreases even if the engine misbehaves.
func (j *Job) publish(stage string, fraction float64) {
	j.mu.Lock()
	if fraction < j.lastFraction {
		fraction = j.lastFraction
	}
	if fraction > 1 {
		fraction = 1
	}
	j.lastFraction = fraction
	j.mu.Unlock()

	select {
	case j.progress <- Progress{Stage: stage, Fraction: fraction}:
	default:
	}
}

// Start begins a recognition run over one captured image and returns
// immediately. The returned job resolves to exactly one terminal outcome.
// Re-scanning is a fresh Start with a new image, never a retry inside the
// orchestrator.
func (o *Orchestrator) Start(ctx context.Context, image []byte) *Job {
	job := &Job{
		progress: make(chan Progress, 16),
		done:     make(chan struct{}),
		state:    StateIdle,
	}
	go o.run(ctx, image, job)
	return job
}

func (o *Orchestrator) run(ctx context.Context, data []byte, job *Job) {
	defer close(job.progress)
	defer close(job.done)

	job.setState(StatePreparing)
	job.publish(LabelPreparing, 0)

	img, err := imaging.Decode(data)
	if err != nil {
		job.fail(err)
		return
	}
	normalized := imaging.Normalize(imaging.Downscale(img, o.maxDimension))
	encoded, err := imaging.EncodePNG(normalized)
	if err != nil {
		job.fail(err)
		return
	}

	job.setState(StateRecognizing)
	recognized, err := o.engine.Recognize(ctx, encoded, o.languages, func(stage string, fraction float64) {
		job.publish(StageLabel(stage), fraction)
	})
	if err != nil {
		job.fail(err)
		return
	}

	// Extraction is synchronous and never fails.
	receipt := extract.Parse(recognized.Text)

	job.mu.Lock()
	job.result = &Result{
		Receipt:    receipt,
		Text:       recognized.Text,
		Confidence: recognized.Confidence,
	}
	job.state = StateDone
	job.mu.Unlock()
}

func (j *Job) fail(err error) {
	j.mu.Lock()
	j.err = err
	j.state = StateFailed
	j.mu.Unlock()
}
