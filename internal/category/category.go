// Package category assigns shopping items to categories via an ordered
// keyword table.
package category

import "strings"

// Uncategorized is the label returned when no keyword matches.
const Uncategorized = "uncategorized"

type entry struct {
	label    string
	keywords []string
}

// catalog order is significant: the first entry whose keyword set matches
// wins, so an item name matching two categories resolves to whichever is
// declared first.
var catalog = []entry{
	{"dairy", []string{"牛乳", "ヨーグルト", "チーズ", "バター", "milk", "yogurt", "cheese", "butter"}},
	{"bread", []string{"パン", "食パン", "ロールパン", "bread", "baguette"}},
	{"fresh-food", []string{"卵", "肉", "魚", "鶏肉", "豚肉", "牛肉", "サーモン", "egg", "fish", "chicken", "pork", "beef", "salmon"}},
	{"vegetables", []string{"レタス", "トマト", "キャベツ", "玉ねぎ", "にんじん", "じゃがいも", "lettuce", "tomato", "cabbage", "onion", "carrot", "potato"}},
	{"fruit", []string{"りんご", "バナナ", "みかん", "いちご", "apple", "banana", "orange", "strawberry"}},
	{"beverages", []string{"水", "お茶", "ジュース", "コーヒー", "water", "juice", "coffee"}},
	{"seasonings", []string{"醤油", "味噌", "砂糖", "塩", "油", "soy sauce", "miso", "sugar", "salt"}},
}

// Categorize returns the category label for an item name. Matching is a
// case-sensitive substring test against each keyword, first match wins.
// Returns Uncategorized when nothing matches.
func Categorize(name string) string {
	for _, e := range catalog {
		for _, kw := range e.keywords {
			if strings.Contains(name, kw) {
				return e.label
			}
		}
	}
	return Uncategorized
}
