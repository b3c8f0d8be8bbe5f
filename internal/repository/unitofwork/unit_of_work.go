package unitofwork

import (
	"context"

	"vehicle-diagnosis-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProblemRepository() contract.ProblemRepository
	ProblemEmbeddingRepository() contract.ProblemEmbeddingRepository
	DealershipRepository() contract.DealershipRepository
	LabourRepository() contract.LabourRepository
	BayRepository() contract.BayRepository
	PartRepository() contract.PartRepository
	InsuranceRuleRepository() contract.InsuranceRuleRepository
	CustomerRepository() contract.CustomerRepository
	VehicleRepository() contract.VehicleRepository
	ServiceRequestRepository() contract.ServiceRequestRepository
	ConversationRepository() contract.ConversationRepository
}
