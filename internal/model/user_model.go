package model

import "time"

type User struct {
	Id          string    `gorm:"type:varchar(64);primaryKey"`
	Subscribed  bool      `gorm:"default:false"`
	PlanRef     string    `gorm:"type:varchar(50);default:''"`
	UsageCount  int       `gorm:"default:0"`
	UsageMonth  string    `gorm:"type:varchar(7);default:''"`
	CustomerRef string    `gorm:"type:varchar(128);default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
