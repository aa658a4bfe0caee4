package main

import (
	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/middleware"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

type routeHandlers struct {
	statements        *handlers.StatementHandler
	accountStatements *handlers.AccountStatementHandler
	accounts          *handlers.AccountHandler
	health            *handlers.HealthCheckHandler
	docs              *handlers.DocsHandler
	dev               *handlers.DevHandler
	auditLogs         *handlers.AuditHandler
	metrics           echo.HandlerFunc
	// audit records state changes made through the API; nil disables it.
	audit services.AuditServiceInterface
}

// registerRoutes mounts the operator API. Reads are open to auditors,
// everything that changes state needs the operator role. Dev routes are only
// mounted when h.dev is set.
func registerRoutes(e *echo.Echo, h routeHandlers, verifier services.TokenVerifierInterface) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", h.metrics)
	e.GET("/docs", h.docs.ServeScalarUI)
	e.GET("/docs/openapi.json", h.docs.ServeOpenAPI)

	api := e.Group("/api/v1", middleware.RequireAuth(verifier))
	readers := middleware.RequireRole(models.RoleOperator, models.RoleAuditor)
	operators := middleware.RequireOperator()

	api.GET("/accounts/:id/balance", h.accounts.GetBalance, readers)
	api.POST("/accounts/:id/close", h.accounts.CloseAccount, operators,
		audited(h.audit, models.AuditActionAccountClosed, models.AuditResourceAccount))

	api.POST("/statements/generate", h.statements.GenerateStatements, operators,
		audited(h.audit, models.AuditActionStatementsGenerated, models.AuditResourceStatementResult))
	api.POST("/statement-results/:id/publish", h.statements.PublishResult, operators,
		audited(h.audit, models.AuditActionResultPublished, models.AuditResourceStatementResult))

	api.POST("/product-statements", h.accountStatements.CreateProductStatement, operators,
		audited(h.audit, models.AuditActionProductStatementCreated, models.AuditResourceProductStatement))
	api.POST("/account-statements", h.accountStatements.CreateAccountStatement, operators,
		audited(h.audit, models.AuditActionAccountStatementCreated, models.AuditResourceAccountStatement))
	api.POST("/account-statements/:id/activate", h.accountStatements.Activate, operators,
		audited(h.audit, models.AuditActionAccountStatementActivated, models.AuditResourceAccountStatement))
	api.POST("/account-statements/:id/inactivate", h.accountStatements.Inactivate, operators,
		audited(h.audit, models.AuditActionAccountStatementInactive, models.AuditResourceAccountStatement))

	if h.auditLogs != nil {
		api.GET("/audit-logs", h.auditLogs.ListAuditLogs, readers)
	}

	if h.dev != nil {
		api.POST("/dev/accounts/:id/ledger", h.dev.SeedLedger, operators,
			audited(h.audit, models.AuditActionLedgerSeeded, models.AuditResourceAccount))
	}
}

func audited(audit services.AuditServiceInterface, action, resource string) echo.MiddlewareFunc {
	return middleware.AuditTrail(audit, action, resource)
}
