package parser

import "github.com/xuri/nfp"

// builtInDateFormats holds the built-in number format ids that render dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// IsBuiltInDateFormat reports whether a built-in number format id formats a date or time.
func IsBuiltInDateFormat(id int) bool {
	return builtInDateFormats[id]
}

// IsDateFormat reports whether a custom number format code formats a date or time.
// Only the first (positive number) section is considered.
func IsDateFormat(code string) bool {
	if code == "" {
		return false
	}
	p := nfp.NumberFormatParser()
	sections := p.Parse(code)
	if len(sections) == 0 {
		return false
	}
	for _, token := range sections[0].Items {
		switch token.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			return true
		}
	}
	return false
}
