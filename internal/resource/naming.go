package resource

import (
	"strings"
	"unicode"
)

// ToWireName converts a camel-cased domain attribute name into its dash-case
// wire form: "avatarUrl" becomes "avatar-url", "winnerID" becomes "winner-id".
// It is the exact inverse of ToDomainName for every name a Schema declares.
func ToWireName(domain string) string {
	var b strings.Builder
	runes := []rune(domain)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && isWordChar(runes[i-1]) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isWordChar(r rune) bool {
	return unicode.IsLower(r) || (r >= '1' && r <= '9')
}

// ToDomainName converts a dash-case wire attribute name into its camel-cased
// domain form: "avatar-url" becomes "avatarUrl". A trailing word that is
// exactly "id" is rendered fully upper-case ("winner-id" -> "winnerID"),
// matching the naming of foreign-key attributes. The rule only fires on an
// exact trailing word: "param-mid" stays "paramMid", and a lone "id" stays
// "id".
func ToDomainName(wire string) string {
	words := strings.Split(wire, "-")
	var b strings.Builder
	b.WriteString(words[0])
	for i, w := range words[1:] {
		if i == len(words)-2 && strings.EqualFold(w, "id") {
			b.WriteString("ID")
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}
