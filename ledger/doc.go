// Package ledger defines the transaction and customer records the analytics
// questions run over, together with loaders for JSON and YAML datasets and
// an embedded sample dataset.
//
//	ds, err := ledger.LoadDataset("transactions.yaml", "customers.yaml")
//	if err != nil {
//	    return err
//	}
//	invalid := arr.Count(ds.Transactions, func(t ledger.Transaction) bool { return !t.Valid() })
package ledger
