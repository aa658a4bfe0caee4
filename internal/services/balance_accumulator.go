package services

import (
	"core-banking-statements/internal/models"
)

// ApplyTransaction returns the snapshot after folding in one transaction.
// changed is false for transaction types that affect neither balance nor
// hold; the snapshot is then returned as is. The accumulator does not
// deduplicate: callers must apply each transaction at most once.
func ApplyTransaction(snapshot models.BalanceSnapshot, tx models.Transaction) (next models.BalanceSnapshot, changed bool) {
	return snapshot.Apply(tx)
}

// ApplyTransactions folds transactions in order and reports whether any of
// them changed the snapshot.
func ApplyTransactions(snapshot models.BalanceSnapshot, transactions []models.Transaction) (models.BalanceSnapshot, bool) {
	changed := false
	for _, tx := range transactions {
		var applied bool
		snapshot, applied = snapshot.Apply(tx)
		changed = changed || applied
	}
	return snapshot, changed
}
