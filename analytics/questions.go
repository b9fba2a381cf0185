package analytics

import (
	"github.com/hasbyte1/figstats/arr"
	"github.com/hasbyte1/figstats/collections"
	"github.com/hasbyte1/figstats/ledger"
)

// Thresholds are the amount boundaries the questions use.
// Amounts below Small are small, below Medium are medium and the rest are
// big. A transaction is large when its amount is strictly above Large.
type Thresholds struct {
	Small  float64
	Medium float64
	Large  float64
}

// DefaultThresholds returns 25 / 75 / 200.
func DefaultThresholds() Thresholds {
	return Thresholds{Small: 25, Medium: 75, Large: 200}
}

// InvalidTransactions returns the transactions with a missing or zero amount
// or an unknown product.
func InvalidTransactions(txs []ledger.Transaction) []ledger.Transaction {
	return collections.From(txs).Filter(func(t ledger.Transaction) bool { return !t.Valid() }).All()
}

// MostRecentLarge returns the last transaction whose amount exceeds large.
// The second result is false when there is none.
func MostRecentLarge(txs []ledger.Transaction, large float64) (ledger.Transaction, bool) {
	return collections.From(txs).FindLast(func(t ledger.Transaction) bool {
		return t.Amount != nil && *t.Amount > large
	})
}

// DuplicatePairs self-joins customers on [ledger.Customer.IsDuplicateOf].
// Every duplicate relation appears twice, as (a, b) and (b, a).
func DuplicatePairs(customers []ledger.Customer) []arr.Pair[ledger.Customer, ledger.Customer] {
	email := func(c ledger.Customer) string { return c.EmailAddress }
	return arr.PairIfKeyed(customers, customers, email, email, ledger.Customer.IsDuplicateOf)
}

// DuplicateCustomers counts unordered duplicate pairs: half the ordered
// pairs returned by [DuplicatePairs].
func DuplicateCustomers(customers []ledger.Customer) int {
	return len(DuplicatePairs(customers)) / 2
}

// DuplicateGroup lists the customer IDs sharing one email address, labelled
// by [ledger.Customer.EmailFingerprint].
type DuplicateGroup struct {
	Fingerprint string `json:"fingerprint"`
	CustomerIDs []int  `json:"customerIds"`
}

// DuplicateGroups folds the duplicate pairs into one group per email
// address, in order of first appearance.
func DuplicateGroups(customers []ledger.Customer) []DuplicateGroup {
	type acc struct {
		groups []DuplicateGroup
		index  map[string]int
		seen   map[int]bool
	}
	folded := arr.Reduce(DuplicatePairs(customers), func(p arr.Pair[ledger.Customer, ledger.Customer], a *acc) *acc {
		fp := p.First.EmailFingerprint()
		i, ok := a.index[fp]
		if !ok {
			i = len(a.groups)
			a.index[fp] = i
			a.groups = append(a.groups, DuplicateGroup{Fingerprint: fp})
		}
		if !a.seen[p.First.ID] {
			a.seen[p.First.ID] = true
			a.groups[i].CustomerIDs = append(a.groups[i].CustomerIDs, p.First.ID)
		}
		return a
	}, &acc{groups: []DuplicateGroup{}, index: map[string]int{}, seen: map[int]bool{}})
	return folded.groups
}

// SizeBuckets partitions transactions by amount. A missing amount counts as
// zero.
type SizeBuckets struct {
	Small  []ledger.Transaction
	Medium []ledger.Transaction
	Big    []ledger.Transaction
}

// BucketCounts is the size of each bucket.
type BucketCounts struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Big    int `json:"big"`
}

// Counts returns the number of transactions per bucket.
func (b SizeBuckets) Counts() BucketCounts {
	return BucketCounts{Small: len(b.Small), Medium: len(b.Medium), Big: len(b.Big)}
}

// BucketBySize reduces txs into small, medium and big buckets.
func BucketBySize(txs []ledger.Transaction, th Thresholds) SizeBuckets {
	return arr.Reduce(txs, func(t ledger.Transaction, b SizeBuckets) SizeBuckets {
		switch v := t.Value(); {
		case v < th.Small:
			b.Small = append(b.Small, t)
		case v < th.Medium:
			b.Medium = append(b.Medium, t)
		default:
			b.Big = append(b.Big, t)
		}
		return b
	}, SizeBuckets{
		Small:  []ledger.Transaction{},
		Medium: []ledger.Transaction{},
		Big:    []ledger.Transaction{},
	})
}

// CustomersWithLarge returns the customers owning at least one transaction
// above large, each once, in order of their first large transaction.
func CustomersWithLarge(ds ledger.Dataset, large float64) []ledger.Customer {
	pairs := collections.PairIf(
		collections.From(ds.Transactions),
		collections.From(ds.Customers),
		func(t ledger.Transaction, c ledger.Customer) bool {
			return t.CustomerID == c.ID && t.Amount != nil && *t.Amount > large
		},
	)
	return collections.Reduce(pairs, func(p arr.Pair[ledger.Transaction, ledger.Customer], acc []ledger.Customer) []ledger.Customer {
		if arr.Contains(acc, func(c ledger.Customer) bool { return c.ID == p.Second.ID }) {
			return acc
		}
		return append(acc, p.Second)
	}, []ledger.Customer{})
}

// CustomerNames maps customers to their full names.
func CustomerNames(customers []ledger.Customer) []string {
	return collections.Map(collections.From(customers), ledger.Customer.FullName).All()
}
