package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/vehicle-catalog-api/internal/models"
)

// Stage identifies one phase of a catalog initialization run.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageBrands           Stage = "brands"
	StageCarModels        Stage = "car_models"
	StageMotorcycleModels Stage = "motorcycle_models"
	StageCompleted        Stage = "completed"
	StageError            Stage = "error"
)

// The three working stages contribute equally to the overall percentage.
const stageWeight = 100.0 / 3

// stageIndex gives the number of stages completed before the given one.
var stageIndex = map[Stage]int{
	StageBrands:           0,
	StageCarModels:        1,
	StageMotorcycleModels: 2,
}

// Update carries a partial state change. Zero-valued fields leave the
// corresponding state untouched, except StageProgress which always applies
// when Stage is set (entering a stage resets its progress). When Total is
// set, the current stage's detail is updated and the stage percentage is
// derived from Completed/Total.
type Update struct {
	Stage         Stage
	StageProgress float64
	Completed     int
	Total         int
	CurrentBrand  string
	Message       string
}

// Tracker holds the mutable progress state of one orchestrator. It is owned
// by whoever constructs it and injected where needed; concurrent readers and
// writers are safe.
type Tracker struct {
	mu      sync.Mutex
	state   models.ProgressState
	running bool
}

// NewTracker creates an idle Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		state: models.ProgressState{Stage: string(StageIdle)},
	}
}

// Start claims the tracker for a new run. Only one run may be active at a
// time; a second Start while running is refused.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("catalog initialization already running")
	}

	now := time.Now()
	t.running = true
	t.state = models.ProgressState{
		Stage:     string(StageBrands),
		Details:   make(map[string]models.StageDetail),
		StartedAt: &now,
	}
	return nil
}

// Update merges a partial update into the state and recomputes the overall
// percentage.
func (t *Tracker) Update(u Update) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if u.Stage != "" {
		t.state.Stage = string(u.Stage)
		t.state.StageProgress = clamp(u.StageProgress)
		t.state.CurrentBrand = ""
	} else if u.StageProgress > 0 {
		t.state.StageProgress = clamp(u.StageProgress)
	}
	if u.Total > 0 {
		if t.state.Details == nil {
			t.state.Details = make(map[string]models.StageDetail)
		}
		detail := t.state.Details[t.state.Stage]
		detail.Completed = u.Completed
		detail.Total = u.Total
		if u.CurrentBrand != "" {
			detail.Current = u.CurrentBrand
		}
		t.state.Details[t.state.Stage] = detail
		t.state.StageProgress = clamp(float64(u.Completed) * 100 / float64(u.Total))
	}
	if u.CurrentBrand != "" {
		t.state.CurrentBrand = u.CurrentBrand
	}
	if u.Message != "" {
		t.state.Message = u.Message
	}

	if idx, ok := stageIndex[Stage(t.state.Stage)]; ok {
		t.state.Overall = clamp(float64(idx)*stageWeight + t.state.StageProgress*stageWeight/100)
	}
}

// AddError records a non-fatal error without stopping the run.
func (t *Tracker) AddError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Errors = append(t.state.Errors, err.Error())
}

// Fail ends the run in the error stage.
func (t *Tracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.state.Stage = string(StageError)
	t.state.Errors = append(t.state.Errors, err.Error())
	t.state.FinishedAt = &now
	t.running = false
}

// Finish ends the run successfully at 100%.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.state.Stage = string(StageCompleted)
	t.state.StageProgress = 100
	t.state.Overall = 100
	t.state.CurrentBrand = ""
	t.state.FinishedAt = &now
	t.running = false
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() models.ProgressState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.state
	state.IsRunning = t.running
	state.Errors = append([]string(nil), t.state.Errors...)
	if t.state.Details != nil {
		state.Details = make(map[string]models.StageDetail, len(t.state.Details))
		for stage, detail := range t.state.Details {
			state.Details[stage] = detail
		}
	}
	return state
}

// IsRunning reports whether a run is active.
func (t *Tracker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
