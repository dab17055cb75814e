package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParty(t *testing.T) {
	cases := []struct {
		party string
		want  SizeCount
	}{
		{"2X20", SizeCount{C20: 2, Raw: "2X20"}},
		{"3X40'HC", SizeCount{C40: 3, Raw: "3X40'HC"}},
		{"21'", SizeCount{C21: 1, Raw: "21'"}},
		{"2 X 20' + 1 X 40'HC", SizeCount{C20: 2, C40: 1, Raw: "2 X 20' + 1 X 40'HC"}},
		{"1x20/1x21", SizeCount{C20: 1, C21: 1, Raw: "1x20/1x21"}},
		{"40", SizeCount{C40: 1, Raw: "40"}},
		{"LCL", SizeCount{Raw: "LCL"}},
		{"", SizeCount{}},
	}

	for _, tc := range cases {
		got := ParseParty(tc.party)
		assert.Equal(t, tc.want, got, "party %q", tc.party)
	}
}

func TestDetectSizePriority(t *testing.T) {
	// "40" harus menang sebelum "20" sempat cocok pada teks campuran.
	assert.Equal(t, 40, DetectSize("THC 40ft"))
	assert.Equal(t, 21, DetectSize("trucking 21'"))
	assert.Equal(t, 20, DetectSize("lolo 20 feet"))
	assert.Equal(t, 0, DetectSize("biaya buruh"))
}

func TestSizeCountAdd(t *testing.T) {
	a := SizeCount{C20: 2, Raw: "2X20"}
	b := SizeCount{C40: 1, Raw: "1X40"}

	sum := a.Add(b)
	assert.Equal(t, SizeCount{C20: 2, C40: 1, Raw: "2X20 + 1X40"}, sum)

	// Raw kosong tidak meninggalkan separator menggantung.
	sum = a.Add(SizeCount{C21: 1})
	assert.Equal(t, "2X20", sum.Raw)

	sum = SizeCount{}.Add(b)
	assert.Equal(t, "1X40", sum.Raw)
}

func TestSizeCountCountFor(t *testing.T) {
	s := SizeCount{C20: 2, C21: 1, C40: 3}

	assert.Equal(t, 2, s.CountFor(20))
	assert.Equal(t, 1, s.CountFor(21))
	assert.Equal(t, 3, s.CountFor(40))
	assert.Equal(t, 0, s.CountFor(45))
}
