package model

// 注文明細。priceは持たない＝表示時にproductsへJOINして現在価格を引く。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"orderId"`
	ProductID int64   `gorm:"not null;index" json:"productId"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
}
