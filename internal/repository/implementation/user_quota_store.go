package implementation

import (
	"context"

	"gourmet-bot-be/internal/entity"
	"gourmet-bot-be/internal/repository/contract"
	"gourmet-bot-be/internal/repository/specification"
	"gourmet-bot-be/pkg/quota"
)

// UserQuotaStore adapts the user repository to the quota ledger's
// account view.
type UserQuotaStore struct {
	users contract.UserRepository
}

func NewUserQuotaStore(users contract.UserRepository) *UserQuotaStore {
	return &UserQuotaStore{users: users}
}

func (s *UserQuotaStore) Find(ctx context.Context, userID string) (*quota.Account, error) {
	user, err := s.users.FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toAccount(user), nil
}

func (s *UserQuotaStore) Create(ctx context.Context, account *quota.Account) error {
	return s.users.Create(ctx, fromAccount(account))
}

func (s *UserQuotaStore) Update(ctx context.Context, account *quota.Account) error {
	user, err := s.users.FindOne(ctx, specification.ByID{ID: account.UserID})
	if err != nil {
		return err
	}
	if user == nil {
		return s.users.Create(ctx, fromAccount(account))
	}

	user.Subscribed = account.Subscribed
	user.PlanRef = account.PlanRef
	user.UsageCount = account.UsageCount
	user.UsageMonth = account.UsageMonth
	if account.CustomerRef != "" {
		user.CustomerRef = account.CustomerRef
	}
	return s.users.Update(ctx, user)
}

func toAccount(u *entity.User) *quota.Account {
	return &quota.Account{
		UserID:      u.Id,
		Subscribed:  u.Subscribed,
		PlanRef:     u.PlanRef,
		UsageCount:  u.UsageCount,
		UsageMonth:  u.UsageMonth,
		CustomerRef: u.CustomerRef,
	}
}

func fromAccount(a *quota.Account) *entity.User {
	return &entity.User{
		Id:          a.UserID,
		Subscribed:  a.Subscribed,
		PlanRef:     a.PlanRef,
		UsageCount:  a.UsageCount,
		UsageMonth:  a.UsageMonth,
		CustomerRef: a.CustomerRef,
	}
}
