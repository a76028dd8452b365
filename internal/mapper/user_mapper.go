package mapper

import (
	"gourmet-bot-be/internal/entity"
	"gourmet-bot-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:          u.Id,
		Subscribed:  u.Subscribed,
		PlanRef:     u.PlanRef,
		UsageCount:  u.UsageCount,
		UsageMonth:  u.UsageMonth,
		CustomerRef: u.CustomerRef,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:          u.Id,
		Subscribed:  u.Subscribed,
		PlanRef:     u.PlanRef,
		UsageCount:  u.UsageCount,
		UsageMonth:  u.UsageMonth,
		CustomerRef: u.CustomerRef,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
