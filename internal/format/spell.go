package format

import "strings"

var digitWords = [...]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// scale words for each group of three digits, lowest first.
var groupWords = [...]string{"", "nghìn", "triệu", "tỷ", "nghìn tỷ", "triệu tỷ", "tỷ tỷ"}

// Pronounce spells n in Vietnamese, e.g. 1005 -> "một nghìn không trăm linh năm".
// Negative values are read with a leading "âm".
func Pronounce(n int64) string {
	if n == 0 {
		return digitWords[0]
	}

	prefix := ""
	u := uint64(n)
	if n < 0 {
		prefix = "âm "
		u = uint64(-(n + 1)) + 1
	}

	var groups []int
	for u > 0 {
		groups = append(groups, int(u%1000))
		u /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		leading := i == len(groups)-1
		parts = append(parts, readGroup(g, leading))
		if groupWords[i] != "" {
			parts = append(parts, groupWords[i])
		}
	}

	return prefix + strings.Join(parts, " ")
}

// PronounceVND reads an amount of dong.
func PronounceVND(n int64) string {
	return Pronounce(n) + " đồng"
}

func readGroup(g int, leading bool) string {
	hundreds, tens, units := g/100, g/10%10, g%10

	var w []string
	if hundreds > 0 || !leading {
		w = append(w, digitWords[hundreds], "trăm")
	}

	switch {
	case tens == 0:
		if units > 0 {
			if len(w) > 0 {
				w = append(w, "linh")
			}
			w = append(w, digitWords[units])
		}
	case tens == 1:
		w = append(w, "mười")
		if units == 5 {
			w = append(w, "lăm")
		} else if units > 0 {
			w = append(w, digitWords[units])
		}
	default:
		w = append(w, digitWords[tens], "mươi")
		switch units {
		case 0:
		case 1:
			w = append(w, "mốt")
		case 4:
			w = append(w, "tư")
		case 5:
			w = append(w, "lăm")
		default:
			w = append(w, digitWords[units])
		}
	}

	return strings.Join(w, " ")
}
