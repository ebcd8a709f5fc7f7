package roster

import "testing"

func TestSimpleCacheRegisterAndLookup(t *testing.T) {
	cache := FactoryNewCache[string](2)

	idx, err := cache.Register("first", "hello")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got, ok := cache.GetIndex("first"); !ok || got != idx {
		t.Errorf("GetIndex() = %d, %v; want %d, true", got, ok, idx)
	}
	if got := cache.GetItem(idx); *got != "hello" {
		t.Errorf("GetItem() = %q, want %q", *got, "hello")
	}

	if _, ok := cache.GetIndex("missing"); ok {
		t.Error("GetIndex() found unregistered key")
	}
}

func TestSimpleCacheLimits(t *testing.T) {
	cache := FactoryNewCache[int](2)

	if _, err := cache.Register("a", 1); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := cache.Register("a", 2); err == nil {
		t.Error("duplicate Register() succeeded, want error")
	}
	if _, err := cache.Register("b", 2); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := cache.Register("c", 3); err == nil {
		t.Error("Register() beyond capacity succeeded, want error")
	}
}
