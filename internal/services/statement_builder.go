package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedProductType = errors.New("unsupported product type")

// StatementInput is the pre-fetched data for one account statement of a batch.
type StatementInput struct {
	Statement   *models.AccountStatement
	Account     *models.Account
	Client      *models.Client
	Identifiers models.AccountIdentifiers
	// Balance as of the last day of the period.
	Closing        models.BalanceSnapshot
	Transactions   []models.Transaction
	PendingIDs     map[uuid.UUID]struct{}
	DisposalLedger []models.Transaction
	From           time.Time
	To             time.Time
	SequenceNumber string
}

// BuiltDocument is the output of one build.
type BuiltDocument struct {
	Document models.StatementDocument
	// Content is the serialised document with structured details merged in.
	Content  []byte
	Metadata []byte
	// ClosingBalances is carried forward per account statement as the next
	// opening balance. For split statements it is the booked closing balance.
	ClosingBalances map[uuid.UUID]decimal.Decimal
	// AccountKind is set for single-account documents of a conversion or
	// disposal account.
	AccountKind string
}

// IdentifierResolver supplies an account's fallback "other" identifier when
// it has neither alias nor internal id.
type IdentifierResolver func(account *models.Account) string

func accountNumberResolver(account *models.Account) string {
	return account.AccountNo
}

// StatementBuilder assembles CAMT.053 statement documents. Product specific
// steps are delegated to a StatementStrategy.
type StatementBuilder struct {
	strategies        map[string]StatementStrategy
	onUsPrefix        string
	defaultIdentifier IdentifierResolver
	now               func() time.Time
}

func NewStatementBuilder(strategies map[string]StatementStrategy, onUsPrefix string) *StatementBuilder {
	return &StatementBuilder{
		strategies:        strategies,
		onUsPrefix:        onUsPrefix,
		defaultIdentifier: accountNumberResolver,
		now:               time.Now,
	}
}

// Strategy returns the strategy of a product type.
func (b *StatementBuilder) Strategy(productType string) (StatementStrategy, error) {
	strategy, ok := b.strategies[productType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProductType, productType)
	}
	return strategy, nil
}

// Build assembles one document covering every input.
func (b *StatementBuilder) Build(productType string, inputs []StatementInput) (*BuiltDocument, error) {
	strategy, err := b.Strategy(productType)
	if err != nil {
		return nil, err
	}

	created := b.now().UTC()
	built := &BuiltDocument{
		Document: models.StatementDocument{
			ProductType: productType,
			GroupHeader: models.GroupHeader{
				MessageIdentification: "MSG-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16],
				CreationDateTime:      created.Format(time.RFC3339),
			},
			Statement: []models.StatementData{},
		},
		ClosingBalances: make(map[uuid.UUID]decimal.Decimal, len(inputs)),
	}
	structured := make(map[string]json.RawMessage)
	var metadata models.StatementMetadata

	for i := range inputs {
		in := &inputs[i]
		discriminator := strategy.ResolveDiscriminator(in.Account)
		own := b.accountIdentification(in.Account, in.Identifiers)

		if discriminator.SplitPending {
			booked, pending := partitionPending(in.Transactions, in.PendingIDs)
			bookedClosing := in.Closing
			bookedClosing.AccountBalance = in.Closing.AccountBalance.Sub(creditTotal(pending))

			built.Document.Statement = append(built.Document.Statement,
				b.statementData(strategy, in, own, models.BookingScopeBooked, booked, bookedClosing, created, structured),
				b.statementData(strategy, in, own, models.BookingScopePending, pending, in.Closing, created, structured),
			)
			built.ClosingBalances[in.Statement.ID] = bookedClosing.AccountBalance
		} else {
			built.Document.Statement = append(built.Document.Statement,
				b.statementData(strategy, in, own, models.BookingScopeAll, in.Transactions, in.Closing, created, structured),
			)
			built.ClosingBalances[in.Statement.ID] = in.Closing.AccountBalance
		}

		metadata.Append(in.Account.ClientID.String(), in.Account.ID.String(), in.Identifiers.IBAN(),
			in.Account.ProductType, in.Account.Currency, in.From, in.To)

		if len(inputs) == 1 && discriminator.Kind != models.AccountKindStandard {
			built.AccountKind = discriminator.Kind
		}
	}

	content, err := json.Marshal(built.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to encode statement document: %w", err)
	}
	if built.Content, err = MergeStructuredDetails(content, structured, strategy.MergeStructuredDetails); err != nil {
		return nil, err
	}
	if built.Metadata, err = json.Marshal(metadata); err != nil {
		return nil, fmt.Errorf("failed to encode statement metadata: %w", err)
	}

	return built, nil
}

func (b *StatementBuilder) statementData(
	strategy StatementStrategy,
	in *StatementInput,
	own models.AccountIdentification,
	scope models.BookingScope,
	transactions []models.Transaction,
	closing models.BalanceSnapshot,
	created time.Time,
	structured map[string]json.RawMessage,
) models.StatementData {
	currency := in.Account.Currency
	closingDate := in.To.AddDate(0, 0, -1)
	if closingDate.Before(in.From) {
		closingDate = in.From
	}

	identification := in.SequenceNumber
	if info := scope.AdditionalInformation(); info != "" {
		identification += "-" + info
	}

	data := models.StatementData{
		Identification:           identification,
		ElectronicSequenceNumber: in.SequenceNumber,
		CreationDateTime:         created.Format(time.RFC3339),
		FromToDate: models.FromToDate{
			FromDateTime: in.From.Format(models.DateLayout),
			ToDateTime:   closingDate.Format(models.DateLayout),
		},
		Account: models.StatementAccount{
			Identification: own,
			Currency:       currency,
		},
		Balance: []models.BalanceLine{
			models.NewBalanceLine(models.BalanceCodeOpening, in.Statement.StatementBalance, currency, in.From),
			models.NewBalanceLine(models.BalanceCodeClosing, closing.AccountBalance, currency, closingDate),
			models.NewBalanceLine(models.BalanceCodeFullPeriod, closing.AvailableBalance(), currency, closingDate),
		},
		TransactionsSummary:            summarize(transactions),
		Entry:                          []models.Entry{},
		AdditionalStatementInformation: scope.AdditionalInformation(),
		SupplementaryData: &models.SupplementaryData{
			ProductType: in.Account.ProductType,
			AccountKind: in.Account.Kind,
		},
	}
	if in.Account.LinkedAccountID != nil {
		data.SupplementaryData.LinkedAccount = in.Account.LinkedAccountID.String()
	}
	if in.Client != nil {
		data.Account.Owner = &models.Party{Name: in.Client.DisplayName}
	}

	for _, tx := range transactions {
		if !tx.IsMonetary() {
			continue
		}
		detail := tx.Detail()
		entryIn := EntryInput{
			Transaction:    tx,
			Detail:         detail,
			Account:        in.Account,
			Own:            own,
			OnUsPrefix:     b.onUsPrefix,
			DisposalLedger: in.DisposalLedger,
		}
		if in.Client != nil {
			entryIn.OwnerName = in.Client.DisplayName
		}

		entry := models.Entry{
			EntryReference:           tx.ID.String(),
			Amount:                   models.NewAmount(tx.Amount, tx.Currency),
			CreditDebitIndicator:     entryIndicator(tx),
			Status:                   scope.EntryStatus(),
			BookingDate:              models.DateHolder{Date: tx.SubmittedOn.Format(models.DateLayout)},
			ValueDate:                models.DateHolder{Date: tx.TransactionDate.Format(models.DateLayout)},
			AccountServicerReference: tx.Reference,
			EntryDetails:             []models.EntryDetails{strategy.BuildEntryDetails(entryIn)},
		}
		if detail.HasStructuredEntryDetails() {
			entry.StructuredDetails = detail.StructuredEntryDetails
			structured[entry.EntryReference] = detail.StructuredEntryDetails
		}
		data.Entry = append(data.Entry, entry)
	}

	return data
}

// accountIdentification resolves the IBAN and the "other" identifier: the
// alias, else the internal id, else the default resolver.
func (b *StatementBuilder) accountIdentification(account *models.Account, ids models.AccountIdentifiers) models.AccountIdentification {
	id := models.AccountIdentification{IBAN: ids.IBAN()}

	if value, scheme, ok := ids.Other(); ok {
		id.Other = &models.OtherIdentifier{Identification: value, SchemeName: scheme}
	} else if value := b.defaultIdentifier(account); value != "" {
		id.Other = &models.OtherIdentifier{Identification: value, SchemeName: models.IdentifierSchemeBBAN}
	}
	return id
}

// partitionPending splits a conversion account's transactions. Pending are
// the credits listed in pendingIDs; everything else is booked.
func partitionPending(transactions []models.Transaction, pendingIDs map[uuid.UUID]struct{}) (booked, pending []models.Transaction) {
	booked = make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if _, ok := pendingIDs[tx.ID]; ok && tx.IsCredit() {
			pending = append(pending, tx)
			continue
		}
		booked = append(booked, tx)
	}
	return booked, pending
}

func creditTotal(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.IsCredit() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func summarize(transactions []models.Transaction) models.TransactionsSummary {
	credits, debits := decimal.Zero, decimal.Zero
	var creditCount, debitCount int
	for _, tx := range transactions {
		switch {
		case tx.IsCredit():
			creditCount++
			credits = credits.Add(tx.Amount)
		case tx.IsDebit():
			debitCount++
			debits = debits.Add(tx.Amount)
		}
	}
	return models.TransactionsSummary{
		TotalCreditEntries: models.NumberAndSum{NumberOfEntries: creditCount, Sum: credits.StringFixed(2)},
		TotalDebitEntries:  models.NumberAndSum{NumberOfEntries: debitCount, Sum: debits.StringFixed(2)},
	}
}

// ResultPath is where a result's content is stored:
// <root>/<productType>/<publishType>/<yyyy>/<MM>/<dd>/<resultCode>.json.
// For a conversion or disposal account document the day segment is replaced
// by the account kind.
func ResultPath(root, productType, publishType string, on time.Time, accountKind, resultCode string) string {
	last := on.Format("02")
	switch accountKind {
	case models.AccountKindConversion:
		last = "conversion_account"
	case models.AccountKindDisposal:
		last = "disposal_account"
	}
	return path.Join(root, productType, strings.ToLower(publishType), on.Format("2006"), on.Format("01"), last, resultCode+".json")
}
