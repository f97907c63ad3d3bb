// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"errors"
	"testing"

	"github.com/axtrust/axtrust/fref"
)

// fakeRegistry implements Registry over an in-memory count table. The
// array owns one unit of count per element; when the array's own count
// reaches zero its elements are released in turn, mirroring how a foreign
// collection deallocates its contents.
type fakeRegistry struct {
	counts   map[fref.Ref]int64
	next     fref.Ref
	listRef  fref.Ref
	elements []fref.Ref
	pids     map[fref.Ref]int32
	names    map[fref.Ref]string

	lookedUp fref.Ref

	nullString  bool
	nullList    bool
	nullElement int // index forced to null, -1 for none
}

func newFakeRegistry(pids ...int32) *fakeRegistry {
	r := &fakeRegistry{
		counts:      make(map[fref.Ref]int64),
		next:        0x3000,
		pids:        make(map[fref.Ref]int32),
		names:       make(map[fref.Ref]string),
		nullElement: -1,
	}
	for _, pid := range pids {
		ref := r.alloc()
		r.pids[ref] = pid
		r.names[ref] = "Fake App"
		r.elements = append(r.elements, ref)
	}
	return r
}

func (r *fakeRegistry) alloc() fref.Ref {
	ref := r.next
	r.next += 0x10
	r.counts[ref] = 1
	return ref
}

func (r *fakeRegistry) Retain(ref fref.Ref) fref.Ref {
	if r.counts[ref] <= 0 {
		panic("retain of dead reference")
	}
	r.counts[ref]++
	return ref
}

func (r *fakeRegistry) Release(ref fref.Ref) {
	if r.counts[ref] <= 0 {
		panic("release of dead reference")
	}
	r.counts[ref]--
	if r.counts[ref] == 0 && ref == r.listRef {
		// The dying array gives up its unit of each element's count.
		for _, elem := range r.elements {
			r.Release(elem)
		}
	}
}

func (r *fakeRegistry) Count(ref fref.Ref) int64 { return r.counts[ref] }

func (r *fakeRegistry) CreateString(s string) fref.Ref {
	if r.nullString {
		return 0
	}
	ref := r.alloc()
	r.names[ref] = s
	return ref
}

func (r *fakeRegistry) CopyRunningApplications(bundleID fref.Ref) fref.Ref {
	r.lookedUp = bundleID
	if r.nullList {
		return 0
	}
	r.listRef = r.alloc()
	return r.listRef
}

func (r *fakeRegistry) ArrayLength(list fref.Ref) int {
	return len(r.elements)
}

func (r *fakeRegistry) ArrayElement(list fref.Ref, index int) fref.Ref {
	if index == r.nullElement {
		return 0
	}
	return r.elements[index]
}

func (r *fakeRegistry) ProcessIdentifier(app fref.Ref) int32 { return r.pids[app] }

func (r *fakeRegistry) LocalizedName(app fref.Ref) string { return r.names[app] }

func TestFindByBundleIDNoMatches(t *testing.T) {
	reg := newFakeRegistry()

	handles, err := FindByBundleID(reg, "com.example.absent")

	if err != nil {
		t.Fatalf("FindByBundleID() error = %v, expected nil for zero matches", err)
	}
	if len(handles) != 0 {
		t.Errorf("FindByBundleID() returned %d handles, expected 0", len(handles))
	}
	if got := reg.counts[reg.listRef]; got != 0 {
		t.Errorf("array count = %d after return, expected 0", got)
	}
}

func TestFindByBundleIDElementsSurviveArrayRelease(t *testing.T) {
	reg := newFakeRegistry(101, 202, 303)

	handles, err := FindByBundleID(reg, "com.apple.Safari")
	if err != nil {
		t.Fatalf("FindByBundleID() error = %v", err)
	}
	if len(handles) != 3 {
		t.Fatalf("FindByBundleID() returned %d handles, expected 3", len(handles))
	}

	// The array handle was released inside the call; each element handle
	// must still independently own its allocation.
	if got := reg.counts[reg.listRef]; got != 0 {
		t.Errorf("array count = %d after return, expected 0", got)
	}
	wantPids := []int32{101, 202, 303}
	for i, h := range handles {
		if got := h.StrongCount(); got != 1 {
			t.Errorf("handle %d StrongCount() = %d after array release, expected 1", i, got)
		}
		if got := Pid(reg, h); got != wantPids[i] {
			t.Errorf("Pid(handle %d) = %d, expected %d", i, got, wantPids[i])
		}
	}

	ReleaseAll(handles)
	for i, elem := range reg.elements {
		if got := reg.counts[elem]; got != 0 {
			t.Errorf("element %d count = %d after ReleaseAll, expected 0", i, got)
		}
	}
}

func TestFindByBundleIDNullString(t *testing.T) {
	reg := newFakeRegistry(1)
	reg.nullString = true

	_, err := FindByBundleID(reg, "com.example.app")

	if !errors.Is(err, fref.ErrUnexpectedNull) {
		t.Fatalf("FindByBundleID() error = %v, expected ErrUnexpectedNull", err)
	}
	if reg.lookedUp != 0 {
		t.Error("registry lookup performed despite null bundle string")
	}
}

func TestFindByBundleIDNullList(t *testing.T) {
	reg := newFakeRegistry(1)
	reg.nullList = true

	_, err := FindByBundleID(reg, "com.example.app")

	if !errors.Is(err, fref.ErrUnexpectedNull) {
		t.Fatalf("FindByBundleID() error = %v, expected ErrUnexpectedNull", err)
	}
}

func TestFindByBundleIDNullElementReleasesPartialResults(t *testing.T) {
	reg := newFakeRegistry(1, 2, 3)
	reg.nullElement = 1

	_, err := FindByBundleID(reg, "com.example.app")

	if !errors.Is(err, fref.ErrUnexpectedNull) {
		t.Fatalf("FindByBundleID() error = %v, expected ErrUnexpectedNull", err)
	}
	// Every count acquired during the aborted call must have been given
	// back: the array cascade then drops each element to zero.
	for i, elem := range reg.elements {
		if got := reg.counts[elem]; got != 0 {
			t.Errorf("element %d count = %d after failed call, expected 0", i, got)
		}
	}
	if got := reg.counts[reg.listRef]; got != 0 {
		t.Errorf("array count = %d after failed call, expected 0", got)
	}
}

func TestFindByBundleIDPassesBundleString(t *testing.T) {
	reg := newFakeRegistry()

	if _, err := FindByBundleID(reg, "org.mozilla.firefox"); err != nil {
		t.Fatalf("FindByBundleID() error = %v", err)
	}

	if reg.lookedUp == 0 {
		t.Fatal("registry lookup never received a bundle string")
	}
	if got := reg.names[reg.lookedUp]; got != "org.mozilla.firefox" {
		t.Errorf("lookup used string %q, expected %q", got, "org.mozilla.firefox")
	}
	if got := reg.counts[reg.lookedUp]; got != 0 {
		t.Errorf("bundle string count = %d after return, expected 0", got)
	}
}
