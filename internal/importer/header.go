package importer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

type role int

const (
	roleDate role = iota
	roleDebit
	roleCredit
	roleDescription
	roleCount
)

func (r role) String() string {
	switch r {
	case roleDate:
		return "date"
	case roleDebit:
		return "debit"
	case roleCredit:
		return "credit"
	case roleDescription:
		return "description"
	}
	return "unknown"
}

// headerKeywords lists normalized substrings that identify each column.
// Bank exports mix Vietnamese with and without diacritics and English.
var headerKeywords = [roleCount][]string{
	roleDate:        {"ngày giao dịch", "ngay giao dich", "ngày gd", "transaction date"},
	roleDebit:       {"ghi nợ", "ghi no", "số tiền rút", "debit", "withdrawal"},
	roleCredit:      {"ghi có", "ghi co", "số tiền gửi", "credit", "deposit"},
	roleDescription: {"nội dung", "noi dung", "diễn giải", "dien giai", "mô tả", "description", "details"},
}

// genericKeywords are only tried once no cell in the row matched
// headerKeywords for that role, so "Ngày hiệu lực" does not take the date
// column from a later "Ngày giao dịch".
var genericKeywords = [roleCount][]string{
	roleDate: {"ngày", "ngay", "date"},
}

// normalizeHeader lowercases s, strips "." and "/" and collapses whitespace.
// Text is NFC-composed first so decomposed Vietnamese matches the keywords.
func normalizeHeader(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	s = strings.NewReplacer(".", "", "/", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// columns maps each role to its column index in the header row.
type columns [roleCount]int

// detectColumns reports the column of every role in row, or false when any
// role is missing. Each cell is claimed by at most one role, checked in role
// order, and specific keywords are tried across the whole row before
// generic ones.
func detectColumns(row []string) (columns, bool) {
	var cols columns
	for i := range cols {
		cols[i] = -1
	}

	texts := make([]string, len(row))
	for i, cell := range row {
		texts[i] = normalizeHeader(cell)
	}
	claimed := make([]bool, len(row))

	for _, keywords := range [][roleCount][]string{headerKeywords, genericKeywords} {
		for idx, text := range texts {
			if text == "" || claimed[idx] {
				continue
			}
			for r := role(0); r < roleCount; r++ {
				if cols[r] != -1 || !matchesAny(text, keywords[r]) {
					continue
				}
				cols[r] = idx
				claimed[idx] = true
				break
			}
		}
	}

	for _, c := range cols {
		if c == -1 {
			return cols, false
		}
	}
	return cols, true
}

func matchesAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
