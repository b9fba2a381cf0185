package ledger

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sample/*.json
var sampleFS embed.FS

// Dataset is the pair of record sets every analytics question reads.
// It is passed explicitly; nothing in this module keeps a global copy.
type Dataset struct {
	Transactions []Transaction
	Customers    []Customer
}

// SampleDataset decodes the dataset embedded in the binary.
func SampleDataset() (Dataset, error) {
	var ds Dataset
	if err := decodeEmbedded("sample/transactions.json", &ds.Transactions); err != nil {
		return Dataset{}, err
	}
	if err := decodeEmbedded("sample/customers.json", &ds.Customers); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// LoadDataset reads transactions and customers from the given files.
// The format is chosen by extension: .json, .yaml or .yml.
//
// When both paths are empty the embedded sample is returned. Setting only one
// of them is an error wrapping [ErrEmptyPath].
func LoadDataset(transactionsPath, customersPath string) (Dataset, error) {
	if transactionsPath == "" && customersPath == "" {
		return SampleDataset()
	}
	if transactionsPath == "" || customersPath == "" {
		return Dataset{}, fmt.Errorf("%w: transactions=%q customers=%q", ErrEmptyPath, transactionsPath, customersPath)
	}

	var ds Dataset
	if err := decodeFile(transactionsPath, &ds.Transactions); err != nil {
		return Dataset{}, err
	}
	if err := decodeFile(customersPath, &ds.Customers); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func decodeEmbedded(name string, v any) error {
	data, err := sampleFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("ledger: read embedded %s: %w", name, err)
	}
	return decode(name, data, v)
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ledger: read %s: %w", path, err)
	}
	return decode(path, data, v)
}

func decode(name string, data []byte, v any) error {
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		err = json.NewDecoder(bytes.NewReader(data)).Decode(v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return fmt.Errorf("ledger: decode %s: %w", name, err)
	}
	return nil
}
