package bodyfat

import (
	"strings"
	"sync"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"codeberg.org/mutker/bodyctl/internal/history"
	"codeberg.org/mutker/bodyctl/internal/logger"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

const trendThreshold = 2.0

// Tracker keeps an ordered body-fat history and a queue of deferred
// calculations.
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

// Record computes and classifies a body-fat % and appends it to the history.
func (t *Tracker) Record(bmi float64, age int, sex string) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.record(bmi, age, sex)
}

func (t *Tracker) record(bmi float64, age int, sex string) (Record, error) {
	fatPct, err := Compute(bmi, age, sex)
	if err != nil {
		return Record{}, err
	}

	s, _ := ParseSex(sex)
	entry := t.records.Append(Record{
		ID:             uuid.New(),
		BMI:            bmi,
		Age:            age,
		Sex:            s,
		FatPct:         fatPct,
		Classification: Classify(fatPct, s, age),
	})

	rec := stamp(entry)

	t.log.Debug().
		Str("id", rec.ID.String()).
		Float64("fat_pct", rec.FatPct).
		Str("sex", string(rec.Sex)).
		Int("age", rec.Age).
		Str("band", rec.Classification.String()).
		Msg("Body fat recorded")

	return rec, nil
}

func (t *Tracker) Enqueue(bmi float64, age int, sex string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.queue.Push(pending{bmi: bmi, age: age, sex: sex})
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
		_, err := t.record(p.bmi, p.age, p.sex)
		return err
	})
	if err != nil {
		t.log.Warn().
			Err(err).
			Int("processed", n).
			Int("remaining", t.queue.Len()).
			Msg("Body fat queue drain stopped")
		return n, errors.New().Wrap(ErrDrainFailed, err)
	}

	t.log.Debug().Int("records", n).Msg("Body fat queue drained")

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

	return stampAll(t.records.All())
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

	t.log.Info().Int("records", n).Msg("Body fat history cleared")

	return true
}

// Trend compares the oldest and newest body-fat values. A drop of more than
// two points is improving, a rise of more than two is worsening.
func (t *Tracker) Trend() Trend {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.records.Len() < 2 {
		return Trend{
			Status:  TrendInsufficientData,
			Message: "at least 2 records are required",
		}
	}

	sorted := t.records.Chronological(false)
	first := sorted[0].Value.FatPct
	last := sorted[len(sorted)-1].Value.FatPct
	diff := last - first

	status := TrendStable
	switch {
	case diff < -trendThreshold:
		status = TrendImproving
	case diff > trendThreshold:
		status = TrendWorsening
	}

	return Trend{
		Status:     status,
		Difference: diff,
		First:      first,
		Last:       last,
		Count:      len(sorted),
	}
}

// FilterBySex returns the records for sex, matched case-insensitively.
func (t *Tracker) FilterBySex(sex string) []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	want := strings.TrimSpace(sex)

	return stampAll(t.records.Filter(func(e history.Entry[Record]) bool {
		return strings.EqualFold(string(e.Value.Sex), want)
	}))
}

// AverageByAgeDecade returns the mean body fat keyed by age rounded down to
// the nearest ten.
func (t *Tracker) AverageByAgeDecade() map[int]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	groups := make(map[int][]float64)
	for _, e := range t.records.All() {
		decade := (e.Value.Age / 10) * 10
		groups[decade] = append(groups[decade], e.Value.FatPct)
	}

	out := make(map[int]float64, len(groups))
	for decade, values := range groups {
		out[decade] = stat.Mean(values, nil)
	}

	return out
}

// RecommendGoal is the tracker form of the package-level RecommendGoal.
func (t *Tracker) RecommendGoal(currentPct float64, sex Sex, age int) Goal {
	return RecommendGoal(currentPct, sex, age)
}

func stamp(e history.Entry[Record]) Record {
	r := e.Value
	r.Timestamp = e.Timestamp

	return r
}

func stampAll(entries []history.Entry[Record]) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = stamp(e)
	}

	return out
}
