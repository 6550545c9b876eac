package bmi

import (
	"sort"
	"sync"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"codeberg.org/mutker/bodyctl/internal/history"
	"codeberg.org/mutker/bodyctl/internal/logger"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tracker keeps an ordered BMI history and a queue of deferred calculations.
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

// WithClock stamps records with c instead of the system clock.
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

// NewTracker returns an empty tracker.
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

// Record computes and classifies a BMI and appends it to the history.
func (t *Tracker) Record(weightKg, heightM float64) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.record(weightKg, heightM)
}

func (t *Tracker) record(weightKg, heightM float64) (Record, error) {
	value, err := Compute(weightKg, heightM)
	if err != nil {
		return Record{}, err
	}

	entry := t.records.Append(Record{
		ID:             uuid.New(),
		WeightKg:       weightKg,
		HeightM:        heightM,
		BMI:            value,
		Classification: Classify(value),
	})

	rec := stamp(entry)

	t.log.Debug().
		Str("id", rec.ID.String()).
		Float64("bmi", rec.BMI).
		Str("band", rec.Classification.String()).
		Msg("BMI recorded")

	return rec, nil
}

// Enqueue defers a calculation until the next Drain.
func (t *Tracker) Enqueue(weightKg, heightM float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.queue.Push(pending{weightKg: weightKg, heightM: heightM})
}

// Pending returns the number of queued calculations.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.queue.Len()
}

// Drain records every queued calculation in FIFO order. An invalid entry
// stops the drain and stays at the front of the queue.
func (t *Tracker) Drain() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.queue.Drain(func(p pending) error {
		_, err := t.record(p.weightKg, p.heightM)
		return err
	})
	if err != nil {
		t.log.Warn().
			Err(err).
			Int("processed", n).
			Int("remaining", t.queue.Len()).
			Msg("BMI queue drain stopped")
		return n, errors.New().Wrap(ErrDrainFailed, err)
	}

	t.log.Debug().Int("records", n).Msg("BMI queue drained")

	return n, nil
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.records.Len()
}

// Records returns a copy of the history in insertion order.
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	return stampAll(t.records.All())
}

// Statistics summarizes every recorded BMI value.
func (t *Tracker) Statistics() Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.records.All()
	if len(entries) == 0 {
		return Statistics{}
	}

	values := make([]float64, len(entries))
	labels := make([]Band, len(entries))
	for i, e := range entries {
		values[i] = e.Value.BMI
		labels[i] = e.Value.Classification
	}

	stats := Statistics{
		Count:          len(values),
		Median:         median(values),
		Min:            floats.Min(values),
		Max:            floats.Max(values),
		MostCommonBand: mostCommon(labels),
	}

	if len(values) < 2 {
		stats.Mean = values[0]
		return stats
	}

	stats.Mean, stats.StdDev = stat.MeanStdDev(values, nil)

	return stats
}

// FilterByBand returns the records whose classification is exactly band.
func (t *Tracker) FilterByBand(band string) []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	return stampAll(t.records.Filter(func(e history.Entry[Record]) bool {
		return string(e.Value.Classification) == band
	}))
}

// Evolution returns the history newest first.
func (t *Tracker) Evolution() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	return stampAll(t.records.Chronological(true))
}

// Clear wipes the history when confirmed and non-empty, and reports whether
// it did.
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

	t.log.Info().Int("records", n).Msg("BMI history cleared")

	return true
}

// Export returns the history as full records ("list") or as value,
// classification and timestamp only ("simplified").
func (t *Tracker) Export(format string) (Export, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	records := stampAll(t.records.All())

	switch Format(format) {
	case FormatList:
		return Export{Format: FormatList, Records: records}, nil
	case FormatSimplified:
		summaries := make([]Summary, len(records))
		for i, r := range records {
			summaries[i] = Summary{
				BMI:            r.BMI,
				Classification: r.Classification,
				Timestamp:      r.Timestamp,
			}
		}
		return Export{Format: FormatSimplified, Summaries: summaries}, nil
	default:
		return Export{}, errors.New().
			WithMessage(ErrInvalidFormat, `export format must be "list" or "simplified"`).
			WithData(format)
	}
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

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// mostCommon returns the most frequent label; ties go to the label seen first.
func mostCommon(labels []Band) Band {
	counts := make(map[Band]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}

	var best Band
	bestCount := 0
	for _, l := range labels {
		if counts[l] > bestCount {
			best, bestCount = l, counts[l]
		}
	}

	return best
}
