package services

import (
	"core-banking-statements/internal/models"

	"github.com/google/uuid"
)

// AccountDiscriminator classifies an account for statement assembly. It is
// derived from the account on every build and never stored.
type AccountDiscriminator struct {
	Kind string
	// SplitPending builds separate booked and pending statements.
	SplitPending bool
	// DisposalAccountID is set when outgoing credits must be detected against
	// the linked disposal account's ledger.
	DisposalAccountID *uuid.UUID
}

// EntryInput is what a strategy sees of one statement entry.
type EntryInput struct {
	Transaction    models.Transaction
	Detail         models.TransactionDetail
	Account        *models.Account
	Own            models.AccountIdentification
	OwnerName      string
	OnUsPrefix     string
	DisposalLedger []models.Transaction
}

// StatementStrategy holds the product specific parts of statement assembly.
type StatementStrategy interface {
	ProductType() string
	ResolveDiscriminator(account *models.Account) AccountDiscriminator
	BuildEntryDetails(in EntryInput) models.EntryDetails
	// MergeStructuredDetails combines the synthesized TransactionDetails of
	// an entry with a channel supplied fragment.
	MergeStructuredDetails(synthesized, fragment []interface{}) []interface{}
}

// NewStatementStrategies returns the strategies keyed by product type.
func NewStatementStrategies() map[string]StatementStrategy {
	return map[string]StatementStrategy{
		models.ProductTypeCurrent: currentAccountStrategy{},
		models.ProductTypeSavings: savingsAccountStrategy{},
	}
}

type currentAccountStrategy struct{}

func (currentAccountStrategy) ProductType() string {
	return models.ProductTypeCurrent
}

func (currentAccountStrategy) ResolveDiscriminator(account *models.Account) AccountDiscriminator {
	return AccountDiscriminator{
		Kind:         account.Kind,
		SplitPending: account.IsConversion(),
	}
}

func (currentAccountStrategy) BuildEntryDetails(in EntryInput) models.EntryDetails {
	td := synthesizeTransactionDetails(in, defaultOutgoing(in))
	return models.EntryDetails{TransactionDetails: []models.TransactionDetails{td}}
}

// MergeStructuredDetails replaces the synthesized first element with the
// fragment's first element.
func (currentAccountStrategy) MergeStructuredDetails(synthesized, fragment []interface{}) []interface{} {
	if len(fragment) == 0 {
		return synthesized
	}
	if len(synthesized) == 0 {
		return fragment
	}
	merged := make([]interface{}, len(synthesized))
	copy(merged, synthesized)
	merged[0] = fragment[0]
	return merged
}

type savingsAccountStrategy struct{}

func (savingsAccountStrategy) ProductType() string {
	return models.ProductTypeSavings
}

func (savingsAccountStrategy) ResolveDiscriminator(account *models.Account) AccountDiscriminator {
	d := AccountDiscriminator{
		Kind:         account.Kind,
		SplitPending: account.IsConversion(),
	}
	if account.IsConversion() && account.LinkedAccountID != nil {
		linked := *account.LinkedAccountID
		d.DisposalAccountID = &linked
	}
	return d
}

// BuildEntryDetails flags every entry as outgoing or not. A credit on a
// conversion account is outgoing when the disposal account booked the
// matching debit, i.e. the funds were forwarded.
func (savingsAccountStrategy) BuildEntryDetails(in EntryInput) models.EntryDetails {
	outgoing := defaultOutgoing(in)
	if in.Account.IsConversion() && in.Transaction.IsCredit() {
		outgoing = hasMatchingDisposalDebit(in.Detail, in.DisposalLedger)
	}

	td := synthesizeTransactionDetails(in, outgoing)
	td.Outgoing = &outgoing
	return models.EntryDetails{TransactionDetails: []models.TransactionDetails{td}}
}

// MergeStructuredDetails appends every fragment element after the
// synthesized details.
func (savingsAccountStrategy) MergeStructuredDetails(synthesized, fragment []interface{}) []interface{} {
	merged := make([]interface{}, 0, len(synthesized)+len(fragment))
	merged = append(merged, synthesized...)
	return append(merged, fragment...)
}

func hasMatchingDisposalDebit(detail models.TransactionDetail, disposalLedger []models.Transaction) bool {
	if detail.CorrelationID == "" {
		return false
	}
	for i := range disposalLedger {
		tx := &disposalLedger[i]
		if !tx.IsDebit() {
			continue
		}
		d := tx.Detail()
		if d.CorrelationID == detail.CorrelationID && d.CategoryPurposeCode == detail.CategoryPurposeCode {
			return true
		}
	}
	return false
}

// defaultOutgoing trusts the channel's stated direction and falls back to
// the transaction's own debit flag.
func defaultOutgoing(in EntryInput) bool {
	if in.Detail.HasDirection() {
		return in.Detail.Direction == models.DirectionOutgoing
	}
	return in.Transaction.IsDebit()
}

// synthesizeTransactionDetails builds an entry's TransactionDetails from the
// transaction and its detail bag. When the channel supplied structured
// details only references and amount are synthesized; the rest comes from
// the fragment.
func synthesizeTransactionDetails(in EntryInput, outgoing bool) models.TransactionDetails {
	tx := in.Transaction
	d := in.Detail

	td := models.TransactionDetails{
		References: models.References{
			EndToEndIdentification:    d.EndToEndID,
			TransactionIdentification: tx.ID.String(),
		},
		Amount:               models.NewAmount(tx.Amount, tx.Currency),
		CreditDebitIndicator: entryIndicator(tx),
	}
	if d.HasStructuredEntryDetails() {
		return td
	}

	own := in.Own
	var owner, partner *models.Party
	if in.OwnerName != "" {
		owner = &models.Party{Name: in.OwnerName}
	}
	if d.PartnerName != "" {
		partner = &models.Party{Name: d.PartnerName}
	}
	partnerAccount := partnerIdentification(d, in.OnUsPrefix)

	parties := &models.RelatedParties{}
	if outgoing {
		parties.Debtor, parties.DebtorAccount = owner, &own
		parties.Creditor, parties.CreditorAccount = partner, partnerAccount
	} else {
		parties.Debtor, parties.DebtorAccount = partner, partnerAccount
		parties.Creditor, parties.CreditorAccount = owner, &own
	}
	td.RelatedParties = parties

	if d.RemittanceInfo != "" {
		td.RemittanceInformation = &models.RemittanceInformation{Unstructured: []string{d.RemittanceInfo}}
	}
	td.Purpose = d.CategoryPurposeCode
	return td
}

// partnerIdentification identifies the counterparty account. On-us partners
// are addressed by alias, others by BBAN.
func partnerIdentification(d models.TransactionDetail, onUsPrefix string) *models.AccountIdentification {
	if d.PartnerIBAN == "" && d.PartnerAccountNo == "" {
		return nil
	}

	id := &models.AccountIdentification{IBAN: d.PartnerIBAN}
	if d.PartnerAccountNo != "" {
		scheme := models.IdentifierSchemeBBAN
		if d.IsOnUs(onUsPrefix) {
			scheme = models.IdentifierSchemeAlias
		}
		id.Other = &models.OtherIdentifier{Identification: d.PartnerAccountNo, SchemeName: scheme}
	}
	return id
}

func entryIndicator(tx models.Transaction) string {
	if tx.IsDebit() {
		return models.DebitIndicator
	}
	return models.CreditIndicator
}
