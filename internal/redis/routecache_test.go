package redis

import "testing"

func TestRouteKey_Deterministic(t *testing.T) {
	k1 := RouteKey("123 Main St, Boston", "456 Oak Ave, Cambridge")
	k2 := RouteKey("123 Main St, Boston", "456 Oak Ave, Cambridge")

	if k1 != k2 {
		t.Errorf("equal inputs produced different keys: %s vs %s", k1, k2)
	}
}

func TestRouteKey_CaseInsensitive(t *testing.T) {
	k1 := RouteKey("Boston", "New York")
	k2 := RouteKey("boston", "new york")

	if k1 != k2 {
		t.Errorf("case-folded inputs produced different keys: %s vs %s", k1, k2)
	}
}

func TestRouteKey_DistinctPairs(t *testing.T) {
	keys := map[string]string{}
	pairs := [][2]string{
		{"Boston", "New York"},
		{"New York", "Boston"}, // direction matters
		{"Boston", "NewYork"},  // whitespace matters
		{"Boston,", "New York"},
		{"", ""},
	}

	for _, p := range pairs {
		k := RouteKey(p[0], p[1])
		if prev, ok := keys[k]; ok {
			t.Errorf("collision between %q->%q and %s", p[0], p[1], prev)
		}
		keys[k] = p[0] + "->" + p[1]
	}
}

func TestRouteKey_FixedLength(t *testing.T) {
	short := RouteKey("a", "b")
	long := RouteKey("a very long street address with unit numbers and a zip code 02139", "another equally long destination address somewhere else entirely")

	if len(short) != 64 || len(long) != 64 {
		t.Errorf("expected 64-char hex keys, got %d and %d", len(short), len(long))
	}
}
