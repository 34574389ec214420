package category

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"牛乳", "dairy"},
		{"低脂肪牛乳", "dairy"}, // substring, not whole-token
		{"パン", "bread"},
		{"食パン", "bread"},
		{"鶏肉", "fresh-food"},
		{"トマト", "vegetables"},
		{"バナナ", "fruit"},
		{"コーヒー", "beverages"},
		{"醤油", "seasonings"},
		{"milk", "dairy"},
		{"banana", "fruit"},
		{"洗剤", Uncategorized},
		{"", Uncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.name); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestCategorizeTableOrderBreaksTies(t *testing.T) {
	// 牛乳パン matches both the dairy and bread keyword sets; dairy is
	// declared first so it must win.
	if got := Categorize("牛乳パン"); got != "dairy" {
		t.Errorf("Categorize(牛乳パン) = %q, want dairy", got)
	}
}

func TestCategorizeIsPure(t *testing.T) {
	first := Categorize("ヨーグルト")
	for i := 0; i < 10; i++ {
		if got := Categorize("ヨーグルト"); got != first {
			t.Fatalf("Categorize returned %q after %q for the same input", got, first)
		}
	}
}
