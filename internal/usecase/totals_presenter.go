package usecase

import (
	"strconv"

	"storefront/internal/domain/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 表示用に整形した集計
type DisplayTotals struct {
	SubTotal   string
	Shipping   string
	Tax        string
	ServiceFee string
	Total      string
}

// 各項目を小数2桁で整形。未計算（null）はゼロ扱い。
// 表示だけでビジネスロジックは持たない。
func FormatTotals(t model.CartTotals) DisplayTotals {
	return DisplayTotals{
		SubTotal:   formatAmount(t.SubTotal),
		Shipping:   formatAmount(t.Shipping),
		Tax:        formatAmount(t.Tax),
		ServiceFee: formatAmount(t.ServiceFee),
		Total:      formatAmount(t.Total),
	}
}

func formatAmount(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

var nprPrinter = message.NewPrinter(language.English)

// ルピー表示（桁区切りあり）。商品表示系で使う。
func FormatNPR(amount float64) string {
	return nprPrinter.Sprintf("Rs. %.2f", amount)
}
