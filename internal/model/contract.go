package model

import (
	"fmt"
	"sort"
	"strings"
)

// monthCodes maps IMM delivery-month letters to calendar months.
// SOFR futures trade the quarterly cycle only.
var monthCodes = map[byte]int{
	'H': 3,
	'M': 6,
	'U': 9,
	'Z': 12,
}

// ContractKey is the chronological sort key of a futures contract:
// resolved delivery year and calendar month.
type ContractKey struct {
	Year  int
	Month int
}

// Less orders keys by (year, month).
func (k ContractKey) Less(o ContractKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

// ParseContract resolves a symbol like "SR3Z4" into its delivery key.
// The symbol ends in a month letter and a single year digit; everything
// before those two characters is the product root.
//
// A single digit cannot pin a decade on its own, so anchorYear supplies the
// window: the digit resolves into [anchorYear, anchorYear+10). With anchor
// 2024, "4" means 2024 and "3" means 2033.
func ParseContract(sym string, anchorYear int) (ContractKey, error) {
	month, digit, err := CheckSymbol(sym)
	if err != nil {
		return ContractKey{}, err
	}
	if anchorYear <= 0 {
		return ContractKey{}, fmt.Errorf("anchor year %d is invalid", anchorYear)
	}

	year := anchorYear - anchorYear%10 + digit
	if year < anchorYear {
		year += 10
	}
	return ContractKey{Year: year, Month: month}, nil
}

// CheckSymbol validates the <root><month-letter><year-digit> shape without
// resolving the year, and returns the calendar month and raw year digit.
func CheckSymbol(sym string) (month, digit int, err error) {
	if len(sym) < 3 {
		return 0, 0, fmt.Errorf("unparseable contract %q: too short", sym)
	}
	monthCh := sym[len(sym)-2]
	yearCh := sym[len(sym)-1]

	month, ok := monthCodes[monthCh]
	if !ok {
		return 0, 0, fmt.Errorf("unparseable contract %q: unknown month letter %q", sym, string(monthCh))
	}
	if yearCh < '0' || yearCh > '9' {
		return 0, 0, fmt.Errorf("unparseable contract %q: year digit %q is not numeric", sym, string(yearCh))
	}
	return month, int(yearCh - '0'), nil
}

// SortContracts returns the identifiers in ascending delivery order under the
// given anchor. The sort is stable and the input slice is not modified.
// Any symbol that fails to parse aborts the whole universe.
func SortContracts(syms []string, anchorYear int) ([]string, error) {
	keys := make(map[string]ContractKey, len(syms))
	for _, s := range syms {
		k, err := ParseContract(s, anchorYear)
		if err != nil {
			return nil, err
		}
		keys[s] = k
	}
	out := make([]string, len(syms))
	copy(out, syms)
	sort.SliceStable(out, func(i, j int) bool {
		return keys[out[i]].Less(keys[out[j]])
	})
	return out, nil
}

// FilterByRoot keeps the identifiers belonging to one product, preserving order.
func FilterByRoot(syms []string, root string) []string {
	out := make([]string, 0, len(syms))
	for _, s := range syms {
		if strings.HasPrefix(s, root) {
			out = append(out, s)
		}
	}
	return out
}
