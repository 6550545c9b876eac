package muscle

import (
	"sync"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"codeberg.org/mutker/bodyctl/internal/history"
	"codeberg.org/mutker/bodyctl/internal/logger"
	"github.com/google/uuid"
)

const hoursPerDay = 24

// Tracker keeps an ordered history of body compositions and a queue of
// deferred calculations.
type Tracker struct {
	mu      sync.Mutex
	log     logger.Logger
	records *history.Log[Record]
	queue   *history.Queue[pending]
}

type Option func(*options)

type options struct {
	clock  history.Clock
	logger logger.Logger
}

func WithClock(c history.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func NewTracker(opts ...Option) *Tracker {
	o := options{clock: history.SystemClock, logger: logger.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tracker{
		log:     o.logger,
		records: history.NewLog[Record](o.clock),
		queue:   history.NewQueue[pending](),
	}
}

// Record computes a composition and appends it to the history.
func (t *Tracker) Record(weightKg, fatPct float64) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.record(weightKg, fatPct)
}

func (t *Tracker) record(weightKg, fatPct float64) (Record, error) {
	c, err := Compute(weightKg, fatPct)
	if err != nil {
		return Record{}, err
	}

	rec := stamp(t.records.Append(Record{ID: uuid.New(), Composition: c}))

	t.log.Debug().
		Str("id", rec.ID.String()).
		Float64("lean_kg", rec.LeanKg).
		Float64("fat_kg", rec.FatKg).
		Float64("muscle_pct", rec.MusclePct).
		Msg("Composition recorded")

	return rec, nil
}

func (t *Tracker) Enqueue(weightKg, fatPct float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.queue.Push(pending{weightKg: weightKg, fatPct: fatPct})
}

func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.queue.Len()
}

// Drain records every queued calculation in FIFO order, stopping at the
// first invalid entry.
func (t *Tracker) Drain() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.queue.Drain(func(p pending) error {
		_, err := t.record(p.weightKg, p.fatPct)
		return err
	})
	if err != nil {
		t.log.Warn().
			Err(err).
			Int("processed", n).
			Int("remaining", t.queue.Len()).
			Msg("Composition queue drain stopped")
		return n, errors.New().Wrap(ErrDrainFailed, err)
	}

	t.log.Debug().Int("records", n).Msg("Composition queue drained")

	return n, nil
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.records.Len()
}

func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.records.All()
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = stamp(e)
	}

	return out
}

// Clear wipes the history when confirmed and non-empty.
func (t *Tracker) Clear(confirmed bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !confirmed {
		return false
	}

	n := t.records.Len()
	if !t.records.Clear() {
		return false
	}

	t.log.Info().Int("records", n).Msg("Composition history cleared")

	return true
}

// MuscleIndex returns lean mass as a percentage of weight for the most
// recently added record. ok is false when nothing has been recorded.
func (t *Tracker) MuscleIndex() (index float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	last, ok := t.records.Last()
	if !ok {
		return 0, false
	}

	return last.Value.LeanKg / last.Value.WeightKg * 100, true
}

// Progress compares lean mass between the oldest and newest record.
func (t *Tracker) Progress() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.records.Len() < 2 {
		return Progress{Status: ProgressInsufficientData}
	}

	sorted := t.records.Chronological(false)
	first, last := sorted[0], sorted[len(sorted)-1]
	delta := last.Value.LeanKg - first.Value.LeanKg

	var pct float64
	if first.Value.LeanKg != 0 {
		pct = delta / first.Value.LeanKg * 100
	}

	return Progress{
		Status:        classifyProgress(delta),
		DeltaKg:       delta,
		PercentChange: pct,
		InitialLeanKg: first.Value.LeanKg,
		CurrentLeanKg: last.Value.LeanKg,
		ElapsedDays:   int(last.Timestamp.Sub(first.Timestamp).Hours() / hoursPerDay),
	}
}

// RecommendTraining suggests a training focus from the latest muscle %.
func (t *Tracker) RecommendTraining() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	last, ok := t.records.Last()
	if !ok {
		return adviceNoData
	}

	return trainingAdvice(last.Value.MusclePct)
}

// Predict returns the composition for a target without recording it.
func (t *Tracker) Predict(weightKg, fatPct float64) (Composition, error) {
	return Predict(weightKg, fatPct)
}

// CaloricDeficit estimates the daily deficit needed to move from the latest
// recorded composition to the target over the given number of weeks.
func (t *Tracker) CaloricDeficit(targetWeightKg, targetFatPct float64, weeks int) (DeficitPlan, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	errFactory := errors.New()

	current, ok := t.records.Last()
	if !ok {
		return DeficitPlan{}, errFactory.WithMessage(ErrNoData, "no composition has been recorded")
	}

	if weeks <= 0 {
		return DeficitPlan{}, errFactory.WithMessage(ErrInvalidInput, "weeks must be greater than zero").
			WithData(weeks)
	}

	target, err := Predict(targetWeightKg, targetFatPct)
	if err != nil {
		return DeficitPlan{}, err
	}

	fatToLose := current.Value.FatKg - target.FatKg
	weekly := fatToLose / float64(weeks)

	plan := DeficitPlan{
		FatToLoseKg:      fatToLose,
		DailyDeficitKcal: fatToLose * kcalPerKgFat / float64(weeks*7),
		Weeks:            weeks,
		WeeklyLossKg:     weekly,
		Healthy:          weekly <= maxHealthyWeeklyKg,
	}

	t.log.Debug().
		Float64("fat_to_lose_kg", plan.FatToLoseKg).
		Float64("daily_deficit_kcal", plan.DailyDeficitKcal).
		Bool("healthy", plan.Healthy).
		Msg("Caloric deficit planned")

	return plan, nil
}

func stamp(e history.Entry[Record]) Record {
	r := e.Value
	r.Timestamp = e.Timestamp

	return r
}
