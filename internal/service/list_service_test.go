package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/storage/memory"
)

func TestSplitItems(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"牛乳とパン", []string{"牛乳", "パン"}},
		{"牛乳、パン、卵", []string{"牛乳", "パン", "卵"}},
		{"milk, bread", []string{"milk", "bread"}},
		{"牛乳，パン", []string{"牛乳", "パン"}},
		{"牛乳", []string{"牛乳"}},
		{" 牛乳 , , パン ", []string{"牛乳", "パン"}},
		{"", nil},
		{"、、", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := SplitItems(tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitItems(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAddItems(t *testing.T) {
	svc := NewListService(memory.New())
	ctx := context.Background()

	t.Run("categorizes and counts", func(t *testing.T) {
		result, err := svc.AddItems(ctx, "u1", "牛乳とパン")
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		want := []models.AddedItem{
			{Name: "牛乳", Category: "dairy"},
			{Name: "パン", Category: "bread"},
		}
		if !reflect.DeepEqual(result.Added, want) {
			t.Errorf("Added = %v, want %v", result.Added, want)
		}
		if result.TotalOpen != 2 {
			t.Errorf("TotalOpen = %d, want 2", result.TotalOpen)
		}
	})

	t.Run("total open grows by token count", func(t *testing.T) {
		before, err := svc.ListItems(ctx, "u1", false)
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}

		result, err := svc.AddItems(ctx, "u1", "卵、バナナ、洗剤")
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if result.TotalOpen != before.TotalCount+3 {
			t.Errorf("TotalOpen = %d, want %d", result.TotalOpen, before.TotalCount+3)
		}
	})

	t.Run("duplicates are separate items", func(t *testing.T) {
		result, err := svc.AddItems(ctx, "u-dup", "牛乳、牛乳")
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if len(result.Added) != 2 || result.TotalOpen != 2 {
			t.Errorf("got %d added, %d open; want 2 and 2", len(result.Added), result.TotalOpen)
		}
	})

	t.Run("empty input adds nothing", func(t *testing.T) {
		result, err := svc.AddItems(ctx, "u-empty", "  、 ")
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if len(result.Added) != 0 || result.TotalOpen != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})
}

func TestListItemsGrouping(t *testing.T) {
	store := memory.New()
	svc := NewListService(store)
	ctx := context.Background()

	if _, err := svc.AddItems(ctx, "u1", "パンと牛乳とヨーグルト"); err != nil {
		t.Fatalf("AddItems failed: %v", err)
	}
	// an item that reached the store without a category must still group
	if err := store.AddItem(ctx, &models.Item{OwnerID: "u1", Name: "謎の品"}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	result, err := svc.ListItems(ctx, "u1", false)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}

	if result.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", result.TotalCount)
	}
	if len(result.Grouped["dairy"]) != 2 {
		t.Errorf("dairy group = %v, want 2 items", result.Grouped["dairy"])
	}
	if len(result.Grouped["bread"]) != 1 {
		t.Errorf("bread group = %v, want 1 item", result.Grouped["bread"])
	}
	if len(result.Grouped["uncategorized"]) != 1 {
		t.Errorf("uncategorized group = %v, want 1 item", result.Grouped["uncategorized"])
	}
	// categories follow the store's category-ascending order
	want := []string{"bread", "dairy", "uncategorized"}
	if !reflect.DeepEqual(result.Categories, want) {
		t.Errorf("Categories = %v, want %v", result.Categories, want)
	}
}

func TestCompleteItems(t *testing.T) {
	svc := NewListService(memory.New())
	ctx := context.Background()

	if _, err := svc.AddItems(ctx, "u1", "牛乳、パン、卵"); err != nil {
		t.Fatalf("AddItems failed: %v", err)
	}

	t.Run("completes matched tokens and skips misses", func(t *testing.T) {
		result, err := svc.CompleteItems(ctx, "u1", "牛乳とチョコ")
		if err != nil {
			t.Fatalf("CompleteItems failed: %v", err)
		}
		if !reflect.DeepEqual(result.Completed, []string{"牛乳"}) {
			t.Errorf("Completed = %v, want [牛乳]", result.Completed)
		}
		if result.RemainingOpen != 2 {
			t.Errorf("RemainingOpen = %d, want 2", result.RemainingOpen)
		}
	})

	t.Run("completing again is a no-op", func(t *testing.T) {
		result, err := svc.CompleteItems(ctx, "u1", "牛乳")
		if err != nil {
			t.Fatalf("CompleteItems failed: %v", err)
		}
		if len(result.Completed) != 0 {
			t.Errorf("Completed = %v, want empty", result.Completed)
		}
		if result.RemainingOpen != 2 {
			t.Errorf("RemainingOpen = %d, want 2", result.RemainingOpen)
		}
	})

	t.Run("all done message", func(t *testing.T) {
		result, err := svc.CompleteItems(ctx, "u1", "パンと卵")
		if err != nil {
			t.Fatalf("CompleteItems failed: %v", err)
		}
		if result.RemainingOpen != 0 {
			t.Errorf("RemainingOpen = %d, want 0", result.RemainingOpen)
		}
		if result.Message != "all items done" {
			t.Errorf("Message = %q", result.Message)
		}
	})
}

func TestClearOpenItems(t *testing.T) {
	svc := NewListService(memory.New())
	ctx := context.Background()

	if _, err := svc.AddItems(ctx, "u1", "牛乳、パン"); err != nil {
		t.Fatalf("AddItems failed: %v", err)
	}
	if _, err := svc.ClearOpenItems(ctx, "u1"); err != nil {
		t.Fatalf("ClearOpenItems failed: %v", err)
	}

	result, err := svc.ListItems(ctx, "u1", false)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if result.TotalCount != 0 {
		t.Errorf("TotalCount after clear = %d, want 0", result.TotalCount)
	}

	// clearing an already-empty list is fine
	if _, err := svc.ClearOpenItems(ctx, "u1"); err != nil {
		t.Errorf("repeated ClearOpenItems failed: %v", err)
	}
}
