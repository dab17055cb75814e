package utils

import (
	"fmt"
	"strings"
)

// FormatRupiah menampilkan nominal dengan pemisah ribuan gaya Indonesia,
// contoh: 2550000 -> "Rp 2.550.000".
func FormatRupiah(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	digits := fmt.Sprintf("%d", whole)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	result := "Rp " + b.String()
	if negative {
		result = "-" + result
	}
	return result
}
