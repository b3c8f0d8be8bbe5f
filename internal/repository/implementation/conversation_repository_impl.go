package implementation

import (
	"context"
	"errors"

	"vehicle-diagnosis-be/internal/mapper"
	"vehicle-diagnosis-be/internal/model"
	"vehicle-diagnosis-be/internal/repository/contract"
	"vehicle-diagnosis-be/pkg/store"

	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{db: db, mapper: mapper.NewConversationMapper()}
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, s *store.Session) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(s)).Error
}

// Get returns (nil, nil) when the session does not exist
func (r *ConversationRepositoryImpl) Get(ctx context.Context, id string) (*store.Session, error) {
	var m model.Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToSession(&m), nil
}

func (r *ConversationRepositoryImpl) Update(ctx context.Context, s *store.Session) error {
	return r.db.WithContext(ctx).Save(r.mapper.ToModel(s)).Error
}
