package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	if err := store.Set(ctx, "geocode/somewhere", []byte(`{"latitude":1}`), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, found, err := store.Get(ctx, "geocode/somewhere")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found {
		t.Fatal("Get did not find the stored entry")
	}
	if string(value) != `{"latitude":1}` {
		t.Errorf("Get returned %q, want %q", value, `{"latitude":1}`)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "weather/us/95014")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Error("Get found an entry that was never stored")
	}

	exists, err := store.Exists(ctx, "weather/us/95014")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if exists {
		t.Error("Exists reported an entry that was never stored")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	if err := store.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	exists, err := store.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if !exists {
		t.Fatal("Exists did not report a fresh entry")
	}

	time.Sleep(20 * time.Millisecond)

	exists, err = store.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if exists {
		t.Error("Exists reported an expired entry")
	}

	_, found, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Error("Get returned an expired entry")
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	if err := store.Set(ctx, "key", []byte("first"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set(ctx, "key", []byte("second"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, found, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found {
		t.Fatal("Get did not find the overwritten entry")
	}
	if string(value) != "second" {
		t.Errorf("Get returned %q, want %q", value, "second")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	original := []byte("value")
	if err := store.Set(ctx, "key", original, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// Mutating the slice passed to Set must not change the stored value.
	original[0] = 'X'

	first, _, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(first) != "value" {
		t.Errorf("stored value changed through caller's slice: %q", first)
	}

	// Mutating a returned slice must not change later reads.
	first[0] = 'Y'

	second, _, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(second) != "value" {
		t.Errorf("stored value changed through returned slice: %q", second)
	}
}

func TestMemoryStoreKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"geocode key", GeocodeKey("10503 N Tantau Ave, Cupertino, CA 95014"), "geocode/10503 N Tantau Ave, Cupertino, CA 95014"},
		{"weather key", WeatherKey("us", "95014"), "weather/us/95014"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key != tt.expected {
				t.Errorf("key = %q, want %q", tt.key, tt.expected)
			}
		})
	}
}
