package eventbus

import (
	"reflect"
	"testing"
)

func TestEmitOrder(t *testing.T) {
	b := New()
	var got []int

	b.Subscribe("tick", func(args ...any) { got = append(got, 1) })
	b.Subscribe("tick", func(args ...any) { got = append(got, 2) })
	b.Subscribe("tick", func(args ...any) { got = append(got, 3) })

	b.Emit("tick")

	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Emit order = %v, expected [1 2 3]", got)
	}
}

func TestEmitArgs(t *testing.T) {
	b := New()
	var got []any

	b.Subscribe("game:score", func(args ...any) { got = args })
	b.Emit("game:score", 10, "bonus")

	if len(got) != 2 || got[0] != 10 || got[1] != "bonus" {
		t.Errorf("Handler args = %v, expected [10 bonus]", got)
	}
}

func TestEmitWithoutListeners(t *testing.T) {
	b := New()
	// Must not panic
	b.Emit("nobody:listens", 1, 2, 3)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0

	id := b.Subscribe("e", func(args ...any) { calls++ })
	b.Unsubscribe("e", id)
	b.Emit("e")

	if calls != 0 {
		t.Errorf("Handler calls after Unsubscribe = %d, expected 0", calls)
	}

	// Unknown ids and events are no-ops
	b.Unsubscribe("e", 999)
	b.Unsubscribe("missing", id)
}

func TestUnsubscribeAll(t *testing.T) {
	b := New()
	b.Subscribe("e", func(args ...any) {})
	b.Subscribe("e", func(args ...any) {})
	b.Subscribe("other", func(args ...any) {})

	b.UnsubscribeAll("e")

	if b.ListenerCount("e") != 0 {
		t.Errorf("ListenerCount(e) = %d, expected 0", b.ListenerCount("e"))
	}
	if b.ListenerCount("other") != 1 {
		t.Errorf("ListenerCount(other) = %d, expected 1", b.ListenerCount("other"))
	}
}

func TestUnsubscribeOwner(t *testing.T) {
	b := New()
	owner := &struct{ name string }{"scene"}
	calls := 0

	b.SubscribeOwned("a", owner, func(args ...any) { calls++ })
	b.SubscribeOwned("b", owner, func(args ...any) { calls++ })
	b.Subscribe("a", func(args ...any) { calls += 10 })

	b.UnsubscribeOwner(owner)
	b.Emit("a")
	b.Emit("b")

	if calls != 10 {
		t.Errorf("calls = %d, expected 10 (only the unowned listener)", calls)
	}
}

func TestNonComparableOwner(t *testing.T) {
	type hud struct{ tags []string }

	tests := []struct {
		name  string
		owner any
	}{
		{"map", map[string]int{"a": 1}},
		{"slice", []int{1}},
		{"struct with slice", hud{tags: []string{"hud"}}},
		{"interface field holding slice", struct{ v any }{v: []int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			calls := 0
			owner := &struct{ name string }{"scene"}
			b.SubscribeOwned("a", owner, func(args ...any) { calls++ })

			if id := b.SubscribeOwned("a", tt.owner, func(args ...any) { calls += 10 }); id != 0 {
				t.Errorf("SubscribeOwned() = %d, expected 0", id)
			}
			if n := b.ListenerCount("a"); n != 1 {
				t.Errorf("ListenerCount() = %d, expected 1", n)
			}

			b.UnsubscribeOwner(tt.owner)
			b.UnsubscribeOwner(hud{})
			b.Emit("a")
			if calls != 1 {
				t.Errorf("calls = %d, expected 1", calls)
			}
		})
	}
}

func TestUnsubscribeOwnerByValue(t *testing.T) {
	type token struct{ id int }
	b := New()
	calls := 0

	b.SubscribeOwned("a", token{1}, func(args ...any) { calls++ })
	b.SubscribeOwned("a", token{2}, func(args ...any) { calls += 10 })
	b.SubscribeOwned("a", 1, func(args ...any) { calls += 100 })

	b.UnsubscribeOwner(token{1})
	b.Emit("a")

	if calls != 110 {
		t.Errorf("calls = %d, expected 110", calls)
	}
}

func TestSubscribeOnce(t *testing.T) {
	b := New()
	calls := 0

	b.SubscribeOnce("e", func(args ...any) { calls++ })
	b.Emit("e")
	b.Emit("e")

	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
	if b.ListenerCount("e") != 0 {
		t.Errorf("ListenerCount() = %d, expected 0", b.ListenerCount("e"))
	}
}

func TestSubscribeOnceReentrant(t *testing.T) {
	b := New()
	calls := 0

	b.SubscribeOnce("e", func(args ...any) {
		calls++
		b.Emit("e")
	})
	b.Emit("e")

	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
}

func TestSubscribeDuringEmit(t *testing.T) {
	b := New()
	late := 0

	b.Subscribe("e", func(args ...any) {
		b.Subscribe("e", func(args ...any) { late++ })
	})

	b.Emit("e")
	if late != 0 {
		t.Errorf("Listener added during emit ran %d times, expected 0", late)
	}

	b.Emit("e")
	if late != 1 {
		t.Errorf("Listener added during first emit ran %d times on second, expected 1", late)
	}
}

func TestReentrantEmit(t *testing.T) {
	b := New()
	var got []string

	b.Subscribe("outer", func(args ...any) {
		got = append(got, "outer")
		b.Emit("inner")
	})
	b.Subscribe("inner", func(args ...any) { got = append(got, "inner") })

	b.Emit("outer")

	if !reflect.DeepEqual(got, []string{"outer", "inner"}) {
		t.Errorf("Emit sequence = %v, expected [outer inner]", got)
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.Subscribe("a", func(args ...any) {})
	b.Subscribe("b", func(args ...any) {})

	b.Clear()

	if b.ListenerCount("a")+b.ListenerCount("b") != 0 {
		t.Error("Clear() should drop every listener")
	}
}

func TestNilHandler(t *testing.T) {
	b := New()
	if id := b.Subscribe("e", nil); id != 0 {
		t.Errorf("Subscribe(nil) = %d, expected 0", id)
	}
	if b.ListenerCount("e") != 0 {
		t.Error("nil handler should not be registered")
	}
}
