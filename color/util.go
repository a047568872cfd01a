package color

import "strconv"

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
