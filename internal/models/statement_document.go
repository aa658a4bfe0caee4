package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Balance type codes, always emitted in this order.
const (
	BalanceCodeOpening    = "OPBD"
	BalanceCodeClosing    = "CLBD"
	BalanceCodeFullPeriod = "XPCD"

	CreditIndicator = "CRDT"
	DebitIndicator  = "DBIT"

	EntryStatusBooked  = "BOOK"
	EntryStatusPending = "PDNG"

	IdentifierSchemeAlias = "ALIAS"
	IdentifierSchemeBBAN  = "BBAN"
)

// BookingScope selects which part of a statement a document covers.
type BookingScope string

const (
	BookingScopeAll     BookingScope = "ALL"
	BookingScopeBooked  BookingScope = "BOOKED"
	BookingScopePending BookingScope = "PENDING"
)

// EntryStatus is BOOK for booked and undivided statements and PDNG for
// pending ones. It depends on the scope only, not on the transaction.
func (s BookingScope) EntryStatus() string {
	if s == BookingScopePending {
		return EntryStatusPending
	}
	return EntryStatusBooked
}

// AdditionalInformation is the literal partition tag; empty for ALL.
func (s BookingScope) AdditionalInformation() string {
	switch s {
	case BookingScopeBooked, BookingScopePending:
		return string(s)
	default:
		return ""
	}
}

// StatementDocument is a CAMT.053 bank-to-customer statement serialised as
// JSON. ProductType tags the variant; product specific data lives in each
// statement's SupplementaryData.
type StatementDocument struct {
	ProductType string          `json:"-"`
	GroupHeader GroupHeader     `json:"GroupHeader"`
	Statement   []StatementData `json:"Statement"`
}

type GroupHeader struct {
	MessageIdentification string `json:"MessageIdentification"`
	CreationDateTime      string `json:"CreationDateTime"`
}

type StatementData struct {
	Identification                 string              `json:"Identification"`
	ElectronicSequenceNumber       string              `json:"ElectronicSequenceNumber,omitempty"`
	CreationDateTime               string              `json:"CreationDateTime"`
	FromToDate                     FromToDate          `json:"FromToDate"`
	Account                        StatementAccount    `json:"Account"`
	Balance                        []BalanceLine       `json:"Balance"`
	TransactionsSummary            TransactionsSummary `json:"TransactionsSummary"`
	Entry                          []Entry             `json:"Entry"`
	AdditionalStatementInformation string              `json:"AdditionalStatementInformation,omitempty"`
	SupplementaryData              *SupplementaryData  `json:"SupplementaryData,omitempty"`
}

type FromToDate struct {
	FromDateTime string `json:"FromDateTime"`
	ToDateTime   string `json:"ToDateTime"`
}

type StatementAccount struct {
	Identification AccountIdentification `json:"Identification"`
	Currency       string                `json:"Currency"`
	Owner          *Party                `json:"Owner,omitempty"`
}

// AccountIdentification carries either an IBAN or an identifier under a
// named scheme.
type AccountIdentification struct {
	IBAN  string           `json:"IBAN,omitempty"`
	Other *OtherIdentifier `json:"Other,omitempty"`
}

type OtherIdentifier struct {
	Identification string `json:"Identification"`
	SchemeName     string `json:"SchemeName"`
}

type Amount struct {
	Value    string `json:"Value"`
	Currency string `json:"Currency"`
}

// NewAmount formats the absolute value of amount with two decimals.
func NewAmount(amount decimal.Decimal, currency string) Amount {
	return Amount{Value: amount.Abs().StringFixed(2), Currency: currency}
}

// IndicatorFor returns DBIT for negative amounts and CRDT otherwise.
func IndicatorFor(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return DebitIndicator
	}
	return CreditIndicator
}

type BalanceLine struct {
	Type                 string     `json:"Type"`
	Amount               Amount     `json:"Amount"`
	CreditDebitIndicator string     `json:"CreditDebitIndicator"`
	Date                 DateHolder `json:"Date"`
}

// NewBalanceLine builds a balance line whose indicator follows the sign of amount.
func NewBalanceLine(code string, amount decimal.Decimal, currency string, date time.Time) BalanceLine {
	return BalanceLine{
		Type:                 code,
		Amount:               NewAmount(amount, currency),
		CreditDebitIndicator: IndicatorFor(amount),
		Date:                 DateHolder{Date: date.Format(DateLayout)},
	}
}

type DateHolder struct {
	Date string `json:"Date"`
}

type TransactionsSummary struct {
	TotalCreditEntries NumberAndSum `json:"TotalCreditEntries"`
	TotalDebitEntries  NumberAndSum `json:"TotalDebitEntries"`
}

type NumberAndSum struct {
	NumberOfEntries int    `json:"NumberOfEntries"`
	Sum             string `json:"Sum"`
}

type Entry struct {
	EntryReference           string         `json:"EntryReference"`
	Amount                   Amount         `json:"Amount"`
	CreditDebitIndicator     string         `json:"CreditDebitIndicator"`
	Status                   string         `json:"Status"`
	BookingDate              DateHolder     `json:"BookingDate"`
	ValueDate                DateHolder     `json:"ValueDate"`
	AccountServicerReference string         `json:"AccountServicerReference,omitempty"`
	EntryDetails             []EntryDetails `json:"EntryDetails,omitempty"`

	// Channel supplied TransactionDetails, spliced in after serialisation.
	StructuredDetails json.RawMessage `json:"-"`
}

type EntryDetails struct {
	TransactionDetails []TransactionDetails `json:"TransactionDetails"`
}

type TransactionDetails struct {
	References            References             `json:"References"`
	Amount                Amount                 `json:"Amount"`
	CreditDebitIndicator  string                 `json:"CreditDebitIndicator"`
	RelatedParties        *RelatedParties        `json:"RelatedParties,omitempty"`
	RemittanceInformation *RemittanceInformation `json:"RemittanceInformation,omitempty"`
	Purpose               string                 `json:"Purpose,omitempty"`
	Outgoing              *bool                  `json:"Outgoing,omitempty"`
}

type References struct {
	EndToEndIdentification    string `json:"EndToEndIdentification,omitempty"`
	TransactionIdentification string `json:"TransactionIdentification"`
}

type RelatedParties struct {
	Debtor          *Party                 `json:"Debtor,omitempty"`
	DebtorAccount   *AccountIdentification `json:"DebtorAccount,omitempty"`
	Creditor        *Party                 `json:"Creditor,omitempty"`
	CreditorAccount *AccountIdentification `json:"CreditorAccount,omitempty"`
}

type Party struct {
	Name string `json:"Name"`
}

type RemittanceInformation struct {
	Unstructured []string `json:"Unstructured"`
}

// SupplementaryData carries the product specific part of a statement.
type SupplementaryData struct {
	ProductType   string `json:"ProductType"`
	AccountKind   string `json:"AccountKind,omitempty"`
	LinkedAccount string `json:"LinkedAccount,omitempty"`
}

// BalanceByCode returns the balance line with the given type code.
func (s StatementData) BalanceByCode(code string) (BalanceLine, bool) {
	for _, b := range s.Balance {
		if b.Type == code {
			return b, true
		}
	}
	return BalanceLine{}, false
}

// StatementMetadata is the side document stored next to a result. Every
// statement of the batch appends one slot to each list.
type StatementMetadata struct {
	CustomerIDs  []string `json:"customer_ids"`
	AccountIDs   []string `json:"account_ids"`
	IBANs        []string `json:"ibans"`
	AccountTypes []string `json:"account_types"`
	Currencies   []string `json:"currencies"`
	FromDates    []string `json:"from_dates"`
	ToDates      []string `json:"to_dates"`
}

// Append adds one statement's slot.
func (m *StatementMetadata) Append(customerID, accountID, iban, accountType, currency string, from, to time.Time) {
	m.CustomerIDs = append(m.CustomerIDs, customerID)
	m.AccountIDs = append(m.AccountIDs, accountID)
	m.IBANs = append(m.IBANs, iban)
	m.AccountTypes = append(m.AccountTypes, accountType)
	m.Currencies = append(m.Currencies, currency)
	m.FromDates = append(m.FromDates, from.Format(DateLayout))
	m.ToDates = append(m.ToDates, to.Format(DateLayout))
}
