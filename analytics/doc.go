// Package analytics answers descriptive questions about a ledger.Dataset
// using the slice helpers of package arr.
//
// Each question is a plain function over explicit inputs
// ([InvalidTransactions], [MostRecentLarge], [DuplicateCustomers],
// [BucketBySize], [CustomersWithLarge]). The built-in questions are also
// registered by name so callers can run one or all of them:
//
//	a := analytics.NewAnalyzer(ds, analytics.DefaultThresholds(), log)
//	report, err := a.Report(ctx)
//	if err != nil {
//	    return err
//	}
//	report.WriteText(os.Stdout)
//
// Additional questions can be added at runtime with [Register].
package analytics
