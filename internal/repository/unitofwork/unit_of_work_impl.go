package unitofwork

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/internal/repository/contract"
	"vehicle-diagnosis-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ProblemRepository() contract.ProblemRepository {
	return implementation.NewProblemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProblemEmbeddingRepository() contract.ProblemEmbeddingRepository {
	return implementation.NewProblemEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DealershipRepository() contract.DealershipRepository {
	return implementation.NewDealershipRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LabourRepository() contract.LabourRepository {
	return implementation.NewLabourRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BayRepository() contract.BayRepository {
	return implementation.NewBayRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PartRepository() contract.PartRepository {
	return implementation.NewPartRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InsuranceRuleRepository() contract.InsuranceRuleRepository {
	return implementation.NewInsuranceRuleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CustomerRepository() contract.CustomerRepository {
	return implementation.NewCustomerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VehicleRepository() contract.VehicleRepository {
	return implementation.NewVehicleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ServiceRequestRepository() contract.ServiceRequestRepository {
	return implementation.NewServiceRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConversationRepository() contract.ConversationRepository {
	return implementation.NewConversationRepository(u.getDB())
}
