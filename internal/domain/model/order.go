package model

import "time"

// 注文。明細なしの注文は作らない（作成は必ず明細と同一トランザクション）。
type Order struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string      `gorm:"column:customer_name;type:varchar(255);not null" json:"customerName"`
	Email        string      `gorm:"type:varchar(255);not null;index" json:"email"`
	Address      string      `gorm:"type:text;not null" json:"address"`
	CreatedAt    time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
