package model

// 匿名カートを指す不透明トークン（30文字固定）
type CartID string

// カートの明細
// priceは追加時点の単価スナップショット。
type CartItem struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"product_id"`
	Title          string  `json:"title"`
	Quantity       int64   `json:"qty"`
	Price          float64 `json:"price"`
	ShippingAmount float64 `json:"shipping_amount"`
	Size           string  `json:"size"`
	Color          string  `json:"color"`
	SubTotal       float64 `json:"sub_total"`
}

// サーバー計算の集計。クライアントからは読み取り専用。
// 各項目は初回計算まえはnull。
type CartTotals struct {
	SubTotal   *float64 `json:"sub_total"`
	Shipping   *float64 `json:"shipping"`
	Tax        *float64 `json:"tax"`
	ServiceFee *float64 `json:"service_fee"`
	Total      *float64 `json:"total"`
}
