package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/figstats/ledger"
)

// Analyzer answers registered questions over one dataset.
type Analyzer struct {
	ds  ledger.Dataset
	th  Thresholds
	log zerolog.Logger
}

// NewAnalyzer creates an Analyzer. The dataset is read, never modified.
func NewAnalyzer(ds ledger.Dataset, th Thresholds, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		ds:  ds,
		th:  th,
		log: log.With().Str("component", "analyzer").Logger(),
	}
}

// Run answers a single question.
func (a *Analyzer) Run(ctx context.Context, name string) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	q, err := Lookup(name)
	if err != nil {
		return Answer{}, err
	}

	start := time.Now()
	ans := q.Answer(a.ds, a.th)
	a.log.Debug().
		Str("question", name).
		Dur("elapsed", time.Since(start)).
		Msg("answered question")
	return ans, nil
}

// Report answers every registered question in registration order. It stops
// at the first question boundary after ctx is done.
func (a *Analyzer) Report(ctx context.Context) (*Report, error) {
	a.log.Info().
		Int("transactions", len(a.ds.Transactions)).
		Int("customers", len(a.ds.Customers)).
		Msg("building report")

	names := Names()
	report := &Report{Answers: make([]Answer, 0, len(names))}
	for _, name := range names {
		ans, err := a.Run(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("analytics: %s: %w", name, err)
		}
		report.Answers = append(report.Answers, ans)
	}
	return report, nil
}

// Report is the ordered set of answers.
type Report struct {
	Answers []Answer `json:"answers"`
}

// Answer returns the answer to the named question, if present.
func (r *Report) Answer(name string) (Answer, bool) {
	for _, a := range r.Answers {
		if a.Question == name {
			return a, true
		}
	}
	return Answer{}, false
}

// WriteText writes each answer's text on its own line(s).
func (r *Report) WriteText(w io.Writer) error {
	for _, a := range r.Answers {
		if _, err := fmt.Fprintln(w, a.Text); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
