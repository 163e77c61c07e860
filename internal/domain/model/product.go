package model

// 商品（カタログ応答のスナップショット）
type Product struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	OldPrice       float64  `json:"old_price"`
	ShippingAmount float64  `json:"shipping_amount"`
	//選択肢が定義されている場合はカート投入まえに選択必須
	Sizes   []string `json:"sizes"`
	Colors  []string `json:"colors"`
	InStock bool     `json:"in_stock"`
}

// 商品一覧の絞り込み条件。空の項目は送らない。
type ProductQuery struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}
