package constants

// Sentinel is written verbatim wherever a field could not be determined.
// Downstream reviewers rely on seeing the literal text instead of a blank
// cell, so it must survive every export format unchanged.
const Sentinel = "null"

// Delimiter joins multi-valued fields (phone numbers, remarks) and
// collapsed separator runs inside addresses.
const Delimiter = "、"

// AddressAnchor is the locality token every roster address starts with.
const AddressAnchor = "虹"

// Committees is the closed set of committee names a roster entry may
// rank. The order is fixed: it is also the committee column order of the
// exported sheet.
var Committees = []string{
	"事務局", "会計", "書記", "名簿",
	"防犯防災", "回覧広報", "地域コミュ",
	"環境美化", "厚生福祉",
}

// Columns is the full output column order: identity fields, the nine
// committee columns, then remarks.
var Columns = buildColumns()

func buildColumns() []string {
	cols := []string{"班", "氏名", "住所", "TEL", "メールアドレス"}
	cols = append(cols, Committees...)
	return append(cols, "補足事項")
}
