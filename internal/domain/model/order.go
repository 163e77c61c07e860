package model

// 注文作成の入力（配送先＋カート参照）
type OrderInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string

	CartID  CartID
	Shopper Shopper
}
