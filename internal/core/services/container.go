package services

import (
	"time"

	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies. The classifier is constructed by the caller since it needs
// its own client configuration.
func NewContainer(repos portsrepo.RepositoryProvider, classifier portssvc.ClassifierSvcFacade, loc *time.Location, storageTimeout time.Duration) *portssvc.ServiceContainer {
	budget := NewBudgetService(repos.SettingsRepo, storageTimeout)

	return &portssvc.ServiceContainer{
		Recorder:   NewRecorderService(repos.EntryRepo, loc, storageTimeout),
		Ledger:     NewLedgerService(repos.EntryRepo, budget, loc, storageTimeout),
		Budget:     budget,
		Report:     NewReportService(repos.EntryRepo, loc, storageTimeout),
		Classifier: classifier,
	}
}

// Compile-time interface checks.
var (
	_ portssvc.RecorderSvcFacade = (*recorderService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.BudgetSvcFacade   = (*budgetService)(nil)
	_ portssvc.ReportSvcFacade   = (*reportService)(nil)
)
