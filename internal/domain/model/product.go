package model

import "github.com/shopspring/decimal"

func init() {
	// priceは "19.99" ではなく 19.99 として返す
	decimal.MarshalJSONWithoutQuotes = true
}

// カタログ商品。シード後は読み取り専用。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	Size        string          `gorm:"type:varchar(100)" json:"size"` // カンマ区切り（S,M,L,XL）
	Category    string          `gorm:"type:varchar(100)" json:"category"`
}
