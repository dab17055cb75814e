package costing

import (
	"strconv"
	"strings"
)

// SizeCount jumlah container per size class hasil parsing kolom party.
type SizeCount struct {
	C20 int `json:"c20"`
	C21 int `json:"c21"`
	C40 int `json:"c40"`
	// Raw menyimpan teks asli untuk ditampilkan apa adanya.
	Raw string `json:"raw"`
}

func (s SizeCount) CountFor(size int) int {
	switch size {
	case 20:
		return s.C20
	case 21:
		return s.C21
	case 40:
		return s.C40
	}
	return 0
}

func (s SizeCount) Add(other SizeCount) SizeCount {
	raw := s.Raw
	if other.Raw != "" {
		if raw == "" {
			raw = other.Raw
		} else {
			raw = raw + " + " + other.Raw
		}
	}
	return SizeCount{
		C20: s.C20 + other.C20,
		C21: s.C21 + other.C21,
		C40: s.C40 + other.C40,
		Raw: raw,
	}
}

// Token ukuran dicari dengan prioritas 40, 21, 20 supaya "40" tidak
// tertangkap sebagai "20" lebih dulu pada teks seperti "40'HC".
var sizeTokens = []int{40, 21, 20}

// DetectSize mencari token ukuran container di teks bebas. 0 berarti tidak ada.
func DetectSize(s string) int {
	for _, size := range sizeTokens {
		if strings.Contains(s, strconv.Itoa(size)) {
			return size
		}
	}
	return 0
}

// ParseParty mem-parse kolom party yang berupa teks bebas seperti
// "2 X 20' + 1 X 40'HC", "3X40'HC", "21'". Tidak ada grammar yang dijamin
// dari upstream; teks yang tidak dikenali menghasilkan hitungan nol dengan
// teks asli tetap tersimpan.
func ParseParty(party string) SizeCount {
	counts := SizeCount{Raw: party}

	for _, segment := range splitSegments(party) {
		sizePart := segment
		multiplier := 1

		if idx := strings.IndexAny(segment, "xX"); idx >= 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(segment[:idx])); err == nil && n > 0 {
				multiplier = n
			}
			sizePart = segment[idx+1:]
		}

		switch DetectSize(sizePart) {
		case 40:
			counts.C40 += multiplier
		case 21:
			counts.C21 += multiplier
		case 20:
			counts.C20 += multiplier
		}
	}

	return counts
}

func splitSegments(party string) []string {
	segments := strings.FieldsFunc(party, func(r rune) bool {
		return r == '+' || r == ',' || r == '/'
	})
	for i, seg := range segments {
		segments[i] = strings.TrimSpace(seg)
	}
	return segments
}
