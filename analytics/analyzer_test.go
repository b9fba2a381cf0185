package analytics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/figstats/analytics"
	"github.com/hasbyte1/figstats/ledger"
)

func newAnalyzer(t *testing.T, ds ledger.Dataset) *analytics.Analyzer {
	t.Helper()
	return analytics.NewAnalyzer(ds, analytics.DefaultThresholds(), zerolog.Nop())
}

func TestBuiltinNames(t *testing.T) {
	require.Equal(t, []string{
		analytics.QuestionInvalidTransactions,
		analytics.QuestionMostRecentLarge,
		analytics.QuestionDuplicateCustomers,
		analytics.QuestionSizeBuckets,
		analytics.QuestionCustomersWithLarge,
	}, analytics.Names()[:5])
}

func TestReportText(t *testing.T) {
	report, err := newAnalyzer(t, sample(t)).Report(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))
	require.Equal(t, `Number of invalid transactions: 5
Most recent transaction over $200: 260
Number of duplicate customers: 2
Number of small transactions: 6
Number of medium transactions: 4
Number of large transactions: 6
Customers with transactions over $200: 2
Names of customers with transactions over $200: Alan Turing, Grace Hopper
`, buf.String())
}

func TestReportJSON(t *testing.T) {
	report, err := newAnalyzer(t, sample(t)).Report(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded struct {
		Answers []struct {
			Question string          `json:"question"`
			Value    json.RawMessage `json:"value"`
		} `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, analytics.QuestionInvalidTransactions, decoded.Answers[0].Question)
	require.JSONEq(t, `5`, string(decoded.Answers[0].Value))
	require.JSONEq(t, `{"found":true,"id":11,"amount":260}`, string(decoded.Answers[1].Value))
	require.JSONEq(t, `{"small":6,"medium":4,"big":6}`, string(decoded.Answers[3].Value))
	require.JSONEq(t, `{"count":2,"names":["Alan Turing","Grace Hopper"]}`, string(decoded.Answers[4].Value))
}

func TestReportNoLargeTransaction(t *testing.T) {
	ds := ledger.Dataset{
		Transactions: []ledger.Transaction{tx(1, 1, ledger.FigJam, ledger.Amount(12))},
	}
	ans, err := newAnalyzer(t, ds).Run(context.Background(), analytics.QuestionMostRecentLarge)
	require.NoError(t, err)
	require.Equal(t, "Most recent transaction over $200: none", ans.Text)
	require.Equal(t, analytics.LargeTransaction{}, ans.Value)
}

func TestLargeTransactionIDZeroKeptInJSON(t *testing.T) {
	ds := ledger.Dataset{
		Transactions: []ledger.Transaction{tx(0, 1, ledger.FigJam, ledger.Amount(250))},
	}
	ans, err := newAnalyzer(t, ds).Run(context.Background(), analytics.QuestionMostRecentLarge)
	require.NoError(t, err)
	require.Equal(t, analytics.LargeTransaction{Found: true, ID: 0, Amount: 250}, ans.Value)

	data, err := json.Marshal(ans.Value)
	require.NoError(t, err)
	require.JSONEq(t, `{"found":true,"id":0,"amount":250}`, string(data))
}

func TestRunUnknownQuestion(t *testing.T) {
	_, err := newAnalyzer(t, sample(t)).Run(context.Background(), "nope")
	require.ErrorIs(t, err, analytics.ErrQuestionNotFound)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAnalyzer(t, sample(t)).Report(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunHonoursThresholds(t *testing.T) {
	th := analytics.Thresholds{Small: 25, Medium: 75, Large: 300}
	a := analytics.NewAnalyzer(sample(t), th, zerolog.Nop())
	ans, err := a.Run(context.Background(), analytics.QuestionCustomersWithLarge)
	require.NoError(t, err)
	require.Equal(t, analytics.LargeCustomers{Count: 1, Names: []string{"Grace Hopper"}}, ans.Value)
}

func TestRegisterCustomQuestion(t *testing.T) {
	const name = "valid-revenue"
	err := analytics.Register(analytics.Question{
		Name:        name,
		Description: "sum of valid transaction amounts",
		Answer: func(ds ledger.Dataset, _ analytics.Thresholds) analytics.Answer {
			var sum float64
			for _, t := range ds.Transactions {
				if t.Valid() {
					sum += t.Value()
				}
			}
			return analytics.Answer{Question: name, Value: sum}
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { analytics.Unregister(name) })

	require.Contains(t, analytics.Names(), name)
	ans, err := analytics.Run(name, ledger.Dataset{Transactions: []ledger.Transaction{
		tx(1, 1, ledger.FigJam, ledger.Amount(2)),
		tx(2, 1, "BAD", ledger.Amount(100)),
		tx(3, 1, ledger.FigJelly, ledger.Amount(3)),
	}}, analytics.DefaultThresholds())
	require.NoError(t, err)
	require.Equal(t, 5.0, ans.Value)

	require.True(t, analytics.Unregister(name))
	require.False(t, analytics.Unregister(name))
	_, err = analytics.Lookup(name)
	require.ErrorIs(t, err, analytics.ErrQuestionNotFound)
}

func TestRegisterRejectsBadQuestions(t *testing.T) {
	require.ErrorIs(t, analytics.Register(analytics.Question{}), analytics.ErrEmptyQuestionName)
	require.Error(t, analytics.Register(analytics.Question{Name: "no-func"}))
}

func TestReportAnswerLookup(t *testing.T) {
	report, err := newAnalyzer(t, sample(t)).Report(context.Background())
	require.NoError(t, err)

	ans, ok := report.Answer(analytics.QuestionDuplicateCustomers)
	require.True(t, ok)
	dups := ans.Value.(analytics.Duplicates)
	require.Equal(t, 2, dups.Count)

	_, ok = report.Answer("missing")
	require.False(t, ok)
}
