package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxSeedTransactions = 1000
	salaryDay           = 1
	holdReleaseDays     = 2
)

type ledgerSeeder struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	faker           *gofakeit.Faker
	onUsPrefix      string
	logger          *slog.Logger
}

// NewLedgerSeeder creates a seeder. A zero seed picks a random one.
func NewLedgerSeeder(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	onUsPrefix string,
	seed uint64,
	logger *slog.Logger,
) LedgerSeederInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerSeeder{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		faker:           gofakeit.New(seed),
		onUsPrefix:      onUsPrefix,
		logger:          logger,
	}
}

// Seed posts a monthly salary, monthly bills, the given number of card
// purchases, a hold with its release and an on-us transfer between from and
// to. Debits and holds that would exceed the available balance, existing
// ledger included, are skipped. It returns the
// number of entries written.
func (s *ledgerSeeder) Seed(ctx context.Context, accountID uuid.UUID, from, to time.Time, purchases int) (int, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if account.Status == models.AccountStatusClosed {
		return 0, fmt.Errorf("%w: %s", ErrAccountClosed, account.ID)
	}

	from, to = models.DateOf(from), models.DateOf(to)
	if account.ActivatedOn != nil && from.Before(*account.ActivatedOn) {
		from = models.DateOf(*account.ActivatedOn)
	}
	if !from.Before(to) {
		return 0, nil
	}
	if purchases > maxSeedTransactions {
		purchases = maxSeedTransactions
	}

	entries := s.salaries(account, from, to)
	entries = append(entries, s.bills(account, from, to)...)
	entries = append(entries, s.purchases(account, from, to, purchases)...)
	entries = append(entries, s.holdAndRelease(account, from, to)...)
	entries = append(entries, s.onUsTransfer(account, from, to))

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SubmittedOn.Before(entries[j].SubmittedOn)
	})

	position, err := s.openingPosition(ctx, account.ID, from, to)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, tx := range entries {
		if (tx.TransactionType == models.TransactionTypeDebit || tx.TransactionType == models.TransactionTypeHold) &&
			position.AvailableBalance().LessThan(tx.Amount) {
			continue
		}
		if tx.TransactionType == models.TransactionTypeRelease && position.HoldAmount.LessThan(tx.Amount) {
			continue
		}
		if err := s.transactionRepo.Create(ctx, tx); err != nil {
			s.logger.Warn("failed to seed transaction",
				"account_id", account.ID,
				"transaction_type", tx.TransactionType,
				"error", err)
			continue
		}
		position, _ = position.Apply(*tx)
		created++
	}

	s.logger.Info("ledger seeded",
		"account_id", account.ID,
		"from", from.Format(models.DateLayout),
		"to", to.Format(models.DateLayout),
		"transactions_created", created)
	return created, nil
}

// openingPosition folds the postings already on the ledger through to.
// Credits dated on or after from are left out, so no seeded debit spends
// money that only arrives later in the window.
func (s *ledgerSeeder) openingPosition(ctx context.Context, accountID uuid.UUID, from, to time.Time) (models.BalanceSnapshot, error) {
	existing, err := s.transactionRepo.ListForBalance(ctx, accountID, nil, to)
	if err != nil {
		return models.BalanceSnapshot{}, fmt.Errorf("failed to load ledger for seeding: %w", err)
	}

	position := models.ZeroSnapshot(accountID)
	for _, tx := range existing {
		if tx.IsCredit() && !tx.SubmittedOn.Before(from) {
			continue
		}
		position, _ = position.Apply(tx)
	}
	return position, nil
}

func (s *ledgerSeeder) entry(account *models.Account, txType string, amount decimal.Decimal, on time.Time, details models.JSONBMap) *models.Transaction {
	return &models.Transaction{
		AccountID:       account.ID,
		TransactionType: txType,
		Amount:          amount.Round(2),
		Currency:        account.Currency,
		SubmittedOn:     on,
		TransactionDate: on,
		Description:     details.String(models.DetailKeyRemittanceInfo),
		Details:         details,
	}
}

func (s *ledgerSeeder) partner(direction, paymentType, purpose string) models.JSONBMap {
	return models.JSONBMap{
		models.DetailKeyEndToEndID:          s.faker.UUID(),
		models.DetailKeyPartnerName:         s.faker.Company(),
		models.DetailKeyPartnerIBAN:         "DE" + s.faker.Numerify("####################"),
		models.DetailKeyPaymentTypeCode:     paymentType,
		models.DetailKeyDirection:           direction,
		models.DetailKeyCategoryPurposeCode: purpose,
		models.DetailKeyRemittanceInfo:      "Invoice " + s.faker.Numerify("INV-######"),
	}
}

func (s *ledgerSeeder) salaries(account *models.Account, from, to time.Time) []*models.Transaction {
	amount := decimal.NewFromFloat(s.faker.Price(2500, 4500))
	employer := s.partner(models.DirectionIncoming, "SEPA-CT", "SALA")

	var out []*models.Transaction
	for day := time.Date(from.Year(), from.Month(), salaryDay, 0, 0, 0, 0, time.UTC); day.Before(to); day = day.AddDate(0, 1, 0) {
		if day.Before(from) {
			continue
		}
		details := copyDetails(employer)
		details[models.DetailKeyEndToEndID] = s.faker.UUID()
		details[models.DetailKeyRemittanceInfo] = "Salary " + day.Format("2006-01")
		out = append(out, s.entry(account, models.TransactionTypeCredit, amount, day, details))
	}
	return out
}

func (s *ledgerSeeder) bills(account *models.Account, from, to time.Time) []*models.Transaction {
	var out []*models.Transaction
	for month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); month.Before(to); month = month.AddDate(0, 1, 0) {
		day := month.AddDate(0, 0, s.faker.IntRange(1, 27))
		if day.Before(from) || !day.Before(to) {
			continue
		}
		amount := decimal.NewFromFloat(s.faker.Price(50, 250))
		out = append(out, s.entry(account, models.TransactionTypeDebit, amount, day,
			s.partner(models.DirectionOutgoing, "SEPA-DD", "SUPP")))
	}
	return out
}

func (s *ledgerSeeder) purchases(account *models.Account, from, to time.Time, n int) []*models.Transaction {
	days := int(to.Sub(from).Hours() / 24)
	out := make([]*models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		day := from.AddDate(0, 0, s.faker.IntRange(0, days-1))
		amount := decimal.NewFromFloat(s.faker.Price(5, 250))
		details := s.partner(models.DirectionOutgoing, "CARD", "")
		delete(details, models.DetailKeyPartnerIBAN)
		details[models.DetailKeyRemittanceInfo] = "Card payment " + details.String(models.DetailKeyPartnerName)
		out = append(out, s.entry(account, models.TransactionTypeDebit, amount, day, details))
	}
	return out
}

func (s *ledgerSeeder) holdAndRelease(account *models.Account, from, to time.Time) []*models.Transaction {
	placed := from.AddDate(0, 0, 1)
	released := placed.AddDate(0, 0, holdReleaseDays)
	if !released.Before(to) {
		return nil
	}
	amount := decimal.NewFromFloat(s.faker.Price(20, 200))
	details := models.JSONBMap{models.DetailKeyRemittanceInfo: "Card authorisation " + s.faker.Company()}
	return []*models.Transaction{
		s.entry(account, models.TransactionTypeHold, amount, placed, details),
		s.entry(account, models.TransactionTypeRelease, amount, released, copyDetails(details)),
	}
}

func (s *ledgerSeeder) onUsTransfer(account *models.Account, from, to time.Time) *models.Transaction {
	day := to.AddDate(0, 0, -1)
	if day.Before(from) {
		day = from
	}
	details := s.partner(models.DirectionIncoming, s.onUsPrefix+"TRANSFER", "CASH")
	delete(details, models.DetailKeyPartnerIBAN)
	details[models.DetailKeyPartnerAccountNo] = s.faker.Numerify("##########")
	details[models.DetailKeyPartnerName] = s.faker.Name()
	return s.entry(account, models.TransactionTypeCredit, decimal.NewFromFloat(s.faker.Price(10, 500)), day, details)
}

func copyDetails(m models.JSONBMap) models.JSONBMap {
	out := make(models.JSONBMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
