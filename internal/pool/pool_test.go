package pool

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/minigame/internal/core"
)

type bullet struct {
	x         int
	resets    int
	destroyed bool
}

func (b *bullet) Reset()   { b.x = 0; b.resets++ }
func (b *bullet) Destroy() { b.destroyed = true }

func newBulletPool(t *testing.T, size int) *Pool[*bullet] {
	t.Helper()
	p, err := New(func() *bullet { return &bullet{} }, size)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNewNilFactory(t *testing.T) {
	_, err := New[*bullet](nil, 3)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("New(nil) error = %v, expected ErrInvalidArgument", err)
	}
}

func TestMustNew(t *testing.T) {
	p := MustNew(func() *bullet { return &bullet{} }, 2)
	if p.AvailableCount() != 2 || p.Created() != 2 {
		t.Errorf("AvailableCount()/Created() = %d/%d, expected 2/2", p.AvailableCount(), p.Created())
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("MustNew(nil) panic = %v, expected ErrInvalidArgument", r)
		}
	}()
	MustNew[*bullet](nil, 1)
}

func TestAcquireBeyondInitialSize(t *testing.T) {
	p := newBulletPool(t, 3)

	for i := 0; i < 3; i++ {
		p.Acquire()
	}
	if p.AvailableCount() != 0 {
		t.Errorf("AvailableCount() = %d, expected 0", p.AvailableCount())
	}

	extra := p.Acquire()
	if extra == nil {
		t.Fatal("Fourth Acquire() returned nil")
	}
	if p.Created() != 4 {
		t.Errorf("Created() = %d, expected 4", p.Created())
	}
	if p.ActiveCount() != 4 {
		t.Errorf("ActiveCount() = %d, expected 4", p.ActiveCount())
	}
}

func TestReleaseResets(t *testing.T) {
	p := newBulletPool(t, 0)
	b := p.Acquire()
	b.x = 42

	if !p.Release(b) {
		t.Fatal("Release() of an active object returned false")
	}
	if b.x != 0 || b.resets != 1 {
		t.Errorf("After Release x=%d resets=%d, expected 0 1", b.x, b.resets)
	}
	if p.Acquire() != b {
		t.Error("Acquire() should reuse the released object")
	}
}

func TestReleaseIdempotent(t *testing.T) {
	p := newBulletPool(t, 0)
	b := p.Acquire()

	p.Release(b)
	if p.Release(b) || p.Release(b) {
		t.Error("Releasing an already released object should be a no-op")
	}
	if b.resets != 1 {
		t.Errorf("resets = %d, expected 1", b.resets)
	}
	if p.AvailableCount() != 1 || p.ActiveCount() != 0 {
		t.Errorf("counts = (%d avail, %d active), expected (1, 0)", p.AvailableCount(), p.ActiveCount())
	}
}

func TestReleaseForeign(t *testing.T) {
	p := newBulletPool(t, 2)
	p.Acquire()

	if p.Release(&bullet{}) {
		t.Error("Release() of an object the pool never handed out should return false")
	}
	if p.AvailableCount()+p.ActiveCount() != p.Created() {
		t.Error("Foreign release changed pool counts")
	}
}

func TestReleaseAll(t *testing.T) {
	p := newBulletPool(t, 0)
	objs := []*bullet{p.Acquire(), p.Acquire(), p.Acquire()}

	p.ReleaseAll(objs)

	if p.ActiveCount() != 0 || p.AvailableCount() != 3 {
		t.Errorf("counts = (%d avail, %d active), expected (3, 0)", p.AvailableCount(), p.ActiveCount())
	}
}

func TestActiveObjectsIsCopy(t *testing.T) {
	p := newBulletPool(t, 0)
	p.Acquire()
	p.Acquire()

	objs := p.ActiveObjects()
	objs[0] = nil

	if p.ActiveObjects()[0] == nil {
		t.Error("Mutating ActiveObjects() result changed the pool")
	}
}

func TestClearDestroys(t *testing.T) {
	p := newBulletPool(t, 2)
	active := p.Acquire()
	avail := p.available[0]

	p.Clear()

	if !active.destroyed || !avail.destroyed {
		t.Error("Clear() should destroy active and available objects")
	}
	if p.ActiveCount() != 0 || p.AvailableCount() != 0 {
		t.Error("Clear() should empty both sequences")
	}
}

func TestConservation(t *testing.T) {
	p := newBulletPool(t, 4)
	rng := rand.New(rand.NewSource(7))
	var held []*bullet

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0, 1:
			held = append(held, p.Acquire())
		case 2:
			if len(held) > 0 {
				idx := rng.Intn(len(held))
				p.Release(held[idx])
				// Keep the stale pointer around sometimes to exercise double release
				if rng.Intn(2) == 0 {
					held = append(held[:idx], held[idx+1:]...)
				}
			}
		}

		if p.ActiveCount()+p.AvailableCount() != p.Created() {
			t.Fatalf("step %d: active(%d) + available(%d) != created(%d)",
				i, p.ActiveCount(), p.AvailableCount(), p.Created())
		}
	}
}

type plain struct{ n int }

func TestPlainObjects(t *testing.T) {
	p, err := New(func() *plain { return &plain{} }, 1)
	if err != nil {
		t.Fatal(err)
	}

	obj := p.Acquire()
	obj.n = 5
	p.Release(obj)
	p.Clear()

	if obj.n != 5 {
		t.Error("Objects without Reset should be returned untouched")
	}
}
