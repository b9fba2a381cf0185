package ledger

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Product identifies what a transaction sold.
type Product string

// The products that make a transaction valid.
const (
	FigJam         Product = "FIG_JAM"
	FigJelly       Product = "FIG_JELLY"
	SpicyFigJam    Product = "SPICY_FIG_JAM"
	OrangeFigJelly Product = "ORANGE_FIG_JELLY"
)

// Products lists every valid product.
var Products = []Product{FigJam, FigJelly, SpicyFigJam, OrangeFigJelly}

// Valid reports whether p is one of [Products].
func (p Product) Valid() bool {
	switch p {
	case FigJam, FigJelly, SpicyFigJam, OrangeFigJelly:
		return true
	}
	return false
}

// Transaction is a single sale. Amount is nil when the source record carried
// null or omitted the field.
type Transaction struct {
	ID         int      `json:"id" yaml:"id"`
	CustomerID int      `json:"customerId" yaml:"customerId"`
	Product    Product  `json:"product" yaml:"product"`
	Amount     *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// HasAmount reports whether the amount is present and non-zero.
func (t Transaction) HasAmount() bool {
	return t.Amount != nil && *t.Amount != 0
}

// Value returns the amount, or 0 when it is missing.
func (t Transaction) Value() float64 {
	if t.Amount == nil {
		return 0
	}
	return *t.Amount
}

// Valid reports whether the transaction has a non-zero amount and a known
// product.
func (t Transaction) Valid() bool {
	return t.HasAmount() && t.Product.Valid()
}

// Customer is a buyer. Two customers sharing an email address under
// different IDs are duplicates.
type Customer struct {
	ID           int    `json:"id" yaml:"id"`
	EmailAddress string `json:"emailAddress" yaml:"emailAddress"`
	FirstName    string `json:"firstName" yaml:"firstName"`
	LastName     string `json:"lastName" yaml:"lastName"`
}

// FullName returns "First Last".
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// IsDuplicateOf reports whether c and other share an email address but not
// an ID. The relation is symmetric.
func (c Customer) IsDuplicateOf(other Customer) bool {
	return c.EmailAddress == other.EmailAddress && c.ID != other.ID
}

const fingerprintLen = 12

// EmailFingerprint returns the first 12 hex characters of the unkeyed
// BLAKE2b-256 digest of the raw email address. It labels duplicate groups:
// equal addresses give equal fingerprints, and no case folding or trimming
// is applied, matching IsDuplicateOf. Anyone holding a candidate address can
// recompute it, so it does not hide the address.
func (c Customer) EmailFingerprint() string {
	sum := blake2b.Sum256([]byte(c.EmailAddress))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// Amount returns a pointer to v, for building transactions in code.
func Amount(v float64) *float64 {
	return &v
}
