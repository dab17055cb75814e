package repositories

import (
	"fmt"
	"time"
)

const orderKeyLayout = "20060102150405"

// NextOrderKey menghasilkan kunci urut kronologis berbasis jam dinding dengan
// sufiks 3 digit untuk tabrakan di detik yang sama (maksimal 999, lalu geser
// ke detik berikutnya). Kunci dijamin lebih besar dari `last` sehingga urutan
// pembuatan selalu bisa direkonstruksi dengan sort string.
func NextOrderKey(now time.Time, taken map[string]bool, last string) string {
	for {
		prefix := now.Format(orderKeyLayout)
		for i := 0; i < 1000; i++ {
			key := fmt.Sprintf("%s%03d", prefix, i)
			if key > last && !taken[key] {
				return key
			}
		}
		now = now.Add(time.Second)
	}
}
