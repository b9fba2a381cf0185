package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/figstats/ledger"
)

// Names of the built-in questions, in report order.
const (
	QuestionInvalidTransactions = "invalid-transactions"
	QuestionMostRecentLarge     = "most-recent-large"
	QuestionDuplicateCustomers  = "duplicate-customers"
	QuestionSizeBuckets         = "size-buckets"
	QuestionCustomersWithLarge  = "customers-with-large"
)

// LargeTransaction is the value of the most-recent-large question.
// ID and Amount are only meaningful when Found is true.
type LargeTransaction struct {
	Found  bool    `json:"found"`
	ID     int     `json:"id"`
	Amount float64 `json:"amount"`
}

// Duplicates is the value of the duplicate-customers question.
type Duplicates struct {
	Count  int              `json:"count"`
	Groups []DuplicateGroup `json:"groups"`
}

// LargeCustomers is the value of the customers-with-large question.
type LargeCustomers struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func registerBuiltins() {
	builtins := []Question{
		{
			Name:        QuestionInvalidTransactions,
			Description: "transactions with a missing or zero amount or an unknown product",
			Answer: func(ds ledger.Dataset, _ Thresholds) Answer {
				n := len(InvalidTransactions(ds.Transactions))
				return Answer{
					Question: QuestionInvalidTransactions,
					Text:     fmt.Sprintf("Number of invalid transactions: %d", n),
					Value:    n,
				}
			},
		},
		{
			Name:        QuestionMostRecentLarge,
			Description: "amount of the last transaction above the large threshold",
			Answer: func(ds ledger.Dataset, th Thresholds) Answer {
				v := LargeTransaction{}
				amount := "none"
				if t, ok := MostRecentLarge(ds.Transactions, th.Large); ok {
					v = LargeTransaction{Found: true, ID: t.ID, Amount: t.Value()}
					amount = money(v.Amount)
				}
				return Answer{
					Question: QuestionMostRecentLarge,
					Text:     fmt.Sprintf("Most recent transaction over $%s: %s", money(th.Large), amount),
					Value:    v,
				}
			},
		},
		{
			Name:        QuestionDuplicateCustomers,
			Description: "customers sharing an email address under different IDs",
			Answer: func(ds ledger.Dataset, _ Thresholds) Answer {
				v := Duplicates{
					Count:  DuplicateCustomers(ds.Customers),
					Groups: DuplicateGroups(ds.Customers),
				}
				return Answer{
					Question: QuestionDuplicateCustomers,
					Text:     fmt.Sprintf("Number of duplicate customers: %d", v.Count),
					Value:    v,
				}
			},
		},
		{
			Name:        QuestionSizeBuckets,
			Description: "transactions per size bucket",
			Answer: func(ds ledger.Dataset, th Thresholds) Answer {
				c := BucketBySize(ds.Transactions, th).Counts()
				return Answer{
					Question: QuestionSizeBuckets,
					Text: fmt.Sprintf("Number of small transactions: %d\nNumber of medium transactions: %d\nNumber of large transactions: %d",
						c.Small, c.Medium, c.Big),
					Value: c,
				}
			},
		},
		{
			Name:        QuestionCustomersWithLarge,
			Description: "customers with at least one transaction above the large threshold",
			Answer: func(ds ledger.Dataset, th Thresholds) Answer {
				names := CustomerNames(CustomersWithLarge(ds, th.Large))
				return Answer{
					Question: QuestionCustomersWithLarge,
					Text: fmt.Sprintf("Customers with transactions over $%[1]s: %[2]d\nNames of customers with transactions over $%[1]s: %[3]s",
						money(th.Large), len(names), strings.Join(names, ", ")),
					Value: LargeCustomers{Count: len(names), Names: names},
				}
			},
		},
	}
	for _, q := range builtins {
		if err := Register(q); err != nil {
			panic(err)
		}
	}
}
