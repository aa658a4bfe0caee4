package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatch               = errors.New("no account statements to generate")
	ErrUnsupportedStatementType = errors.New("unsupported statement type")
)

// GeneratorConfig carries the orchestrator's settings.
type GeneratorConfig struct {
	ResultPathRoot   string
	OperationTimeout time.Duration
	// DisposalSettlementLag extends the disposal ledger window past the
	// period end, so a forwarding debit booked after the cut-off still marks
	// the conversion credit outgoing.
	DisposalSettlementLag time.Duration
}

type statementGenerator struct {
	accountStatementRepo repositories.AccountStatementRepositoryInterface
	resultRepo           repositories.StatementResultRepositoryInterface
	accountRepo          repositories.AccountRepositoryInterface
	clientRepo           repositories.ClientRepositoryInterface
	transactionRepo      repositories.TransactionRepositoryInterface
	balanceService       BalanceServiceInterface
	builder              *StatementBuilder
	eventLogger          StatementEventLoggerInterface
	metrics              MetricsRecorderInterface
	config               GeneratorConfig
	now                  func() time.Time
}

func NewStatementGenerator(
	accountStatementRepo repositories.AccountStatementRepositoryInterface,
	resultRepo repositories.StatementResultRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	balanceService BalanceServiceInterface,
	builder *StatementBuilder,
	eventLogger StatementEventLoggerInterface,
	metrics MetricsRecorderInterface,
	config GeneratorConfig,
) StatementGeneratorInterface {
	return &statementGenerator{
		accountStatementRepo: accountStatementRepo,
		resultRepo:           resultRepo,
		accountRepo:          accountRepo,
		clientRepo:           clientRepo,
		transactionRepo:      transactionRepo,
		balanceService:       balanceService,
		builder:              builder,
		eventLogger:          eventLogger,
		metrics:              metrics,
		config:               config,
		now:                  time.Now,
	}
}

// GenerateBatch builds one shared result for the given account statements
// and advances every one of them. The result and all statement transitions
// commit together. Statements whose account is missing are skipped; an
// inactive statement fails the batch. With deleteSuperseded, results the
// statements pointed to before are deleted when unpublished and no longer
// referenced.
func (g *statementGenerator) GenerateBatch(ctx context.Context, productType, statementType, publishType string, statementIDs []uuid.UUID, deleteSuperseded bool) (*models.AccountStatementResult, error) {
	ctx, cancel := withOperationTimeout(ctx, g.config.OperationTimeout)
	defer cancel()

	start := time.Now()
	today := models.DateOf(g.now())

	if len(statementIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	if statementType != models.StatementTypeCAMT053 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStatementType, statementType)
	}
	if !models.IsValidPublishType(publishType) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidPublishType, publishType)
	}
	if _, err := g.builder.Strategy(productType); err != nil {
		return nil, err
	}

	statements, err := g.accountStatementRepo.GetByIDs(ctx, statementIDs)
	if err != nil {
		return nil, err
	}
	for _, statement := range statements {
		if err := statement.CanGenerate(); err != nil {
			return nil, err
		}
	}

	inputs, err := g.loadInputs(ctx, productType, statements, today)
	if err != nil {
		g.metrics.IncrementCounter(MetricStatementGenerated, map[string]string{"product_type": productType, "status": "failed"})
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	built, err := g.builder.Build(productType, inputs)
	if err != nil {
		g.metrics.IncrementCounter(MetricStatementGenerated, map[string]string{"product_type": productType, "status": "failed"})
		return nil, err
	}

	result := &models.AccountStatementResult{
		ID:            uuid.New(),
		ResultCode:    models.NewResultCode(productType, today),
		ProductType:   productType,
		StatementType: statementType,
		PublishType:   publishType,
		Content:       string(built.Content),
		Metadata:      string(built.Metadata),
		ResultStatus:  models.ResultStatusGenerated,
		GeneratedOn:   today,
	}
	result.ResultPath = ResultPath(g.config.ResultPathRoot, productType, publishType, today, built.AccountKind, result.ResultCode)

	batch := make([]*models.AccountStatement, 0, len(inputs))
	var superseded []uuid.UUID
	for _, in := range inputs {
		if in.Statement.ResultID != nil {
			superseded = append(superseded, *in.Statement.ResultID)
		}
		if err := in.Statement.Generated(result, built.ClosingBalances[in.Statement.ID], today); err != nil {
			return nil, err
		}
		batch = append(batch, in.Statement)
	}

	deleted, err := g.resultRepo.CommitGeneration(ctx, repositories.GenerationCommit{
		Result:           result,
		Statements:       batch,
		Superseded:       superseded,
		DeleteSuperseded: deleteSuperseded,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrConcurrentModification) {
			for _, statement := range batch {
				g.eventLogger.LogOptimisticLockConflict(ctx, "account_statement", statement.ID, statement.Version)
			}
			g.metrics.IncrementCounter(MetricOptimisticLockFailure, map[string]string{"entity": "account_statement"})
		}
		g.metrics.IncrementCounter(MetricStatementGenerated, map[string]string{"product_type": productType, "status": "failed"})
		return nil, err
	}

	for _, id := range deleted {
		g.eventLogger.LogResultDeleted(ctx, id)
		g.metrics.IncrementCounter(MetricResultDeleted, nil)
	}

	duration := time.Since(start)
	g.metrics.RecordProcessingTime(MetricStatementGeneration, duration)
	g.metrics.IncrementCounter(MetricStatementGenerated, map[string]string{"product_type": productType, "status": "success"})
	g.eventLogger.LogStatementGenerated(ctx, result.ID, result.ResultCode, len(batch), duration.Milliseconds())

	return result, nil
}

// loadInputs pre-fetches everything the builder needs. Statements whose
// account cannot be found are logged and left out.
func (g *statementGenerator) loadInputs(ctx context.Context, productType string, statements []*models.AccountStatement, today time.Time) ([]StatementInput, error) {
	strategy, err := g.builder.Strategy(productType)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]uuid.UUID, 0, len(statements))
	for _, s := range statements {
		accountIDs = append(accountIDs, s.AccountID)
	}

	accounts, err := g.accountRepo.GetByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]uuid.UUID, 0, len(accounts))
	for _, a := range accounts {
		clientIDs = append(clientIDs, a.ClientID)
	}
	clients, err := g.clientRepo.GetByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	identifiers, err := g.clientRepo.GetIdentifiers(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	inputs := make([]StatementInput, 0, len(statements))
	for _, statement := range statements {
		account, ok := accounts[statement.AccountID]
		if !ok {
			g.eventLogger.LogBatchItemSkipped(ctx, "generate_statements", statement.ID,
				fmt.Sprintf("%v: %s", repositories.ErrAccountNotFound, statement.AccountID))
			continue
		}
		if account.ProductType != productType {
			return nil, fmt.Errorf("%w: account %s is %s, batch is %s",
				ErrProductTypeMismatch, account.ID, account.ProductType, productType)
		}

		in, err := g.loadInput(ctx, strategy, statement, account, today)
		if err != nil {
			return nil, err
		}
		in.Client = clients[account.ClientID]
		in.Identifiers = identifiers[account.ID]
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func (g *statementGenerator) loadInput(ctx context.Context, strategy StatementStrategy, statement *models.AccountStatement, account *models.Account, today time.Time) (StatementInput, error) {
	to := statement.PeriodEnd(today)
	from := to
	if start := statement.PeriodStart(); start != nil {
		from = *start
	} else if account.ActivatedOn != nil {
		from = models.DateOf(*account.ActivatedOn)
	}

	in := StatementInput{
		Statement:      statement,
		Account:        account,
		From:           from,
		To:             to,
		SequenceNumber: statement.NextElectronicSequenceNumber(today),
	}

	closing, err := g.balanceService.BalanceFor(ctx, account, to.AddDate(0, 0, -1))
	switch {
	case err == nil:
		in.Closing = *closing
	case errors.Is(err, ErrBalanceNotApplicable):
		in.Closing = models.ZeroSnapshot(account.ID)
	default:
		return in, err
	}

	if in.Transactions, err = g.transactionRepo.ListForStatement(ctx, account.ID, from, to); err != nil {
		return in, err
	}

	discriminator := strategy.ResolveDiscriminator(account)
	if discriminator.SplitPending {
		ids, err := g.transactionRepo.ListPendingIDs(ctx, account.ID, from, to)
		if err != nil {
			return in, err
		}
		in.PendingIDs = make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			in.PendingIDs[id] = struct{}{}
		}
	}
	if discriminator.DisposalAccountID != nil {
		until := models.DateOf(to.Add(g.config.DisposalSettlementLag))
		if in.DisposalLedger, err = g.transactionRepo.ListForStatement(ctx, *discriminator.DisposalAccountID, from, until); err != nil {
			return in, err
		}
	}

	slog.Debug("statement input loaded",
		"account_statement_id", statement.ID,
		"account_id", account.ID,
		"from", from.Format(models.DateLayout),
		"to", to.Format(models.DateLayout),
		"transactions", len(in.Transactions))
	return in, nil
}
