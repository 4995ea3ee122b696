// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package avl

import (
	"slices"
	"testing"

	"phone_billing/internal/model"
)

func call(callee string, year, month int) model.Call {
	return model.Call{Callee: callee, Duration: 60, Year: year, Month: month, Day: 1}
}

func callees(l *callList) []string {
	var out []string
	for c := range l.all() {
		out = append(out, c.Callee)
	}
	return out
}

func TestCallListChronologicalOrder(t *testing.T) {
	cases := []struct {
		name    string
		inserts []model.Call
		want    []string
	}{
		{
			name:    "already ordered",
			inserts: []model.Call{call("a", 2020, 1), call("b", 2020, 2), call("c", 2021, 1)},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "reverse order",
			inserts: []model.Call{call("c", 2021, 1), call("b", 2020, 2), call("a", 2020, 1)},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "interior insert",
			inserts: []model.Call{call("a", 2019, 12), call("c", 2020, 5), call("b", 2020, 3)},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "new head",
			inserts: []model.Call{call("b", 2010, 11), call("a", 1999, 7)},
			want:    []string{"a", "b"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l callList
			for _, c := range tc.inserts {
				l.insert(c)
			}

			if got := callees(&l); !slices.Equal(got, tc.want) {
				t.Errorf("order = %v, want %v", got, tc.want)
			}

			// Adjacent keys never decrease head to tail.
			prev := -1
			for c := range l.all() {
				if key := c.Datetime(); key < prev {
					t.Errorf("key %d after %d", key, prev)
				} else {
					prev = key
				}
			}
		})
	}
}

// Same-month calls keep arrival order, including at the head of the
// list.
func TestCallListEqualKeysFIFO(t *testing.T) {
	var l callList
	l.insert(call("first", 2024, 3))
	l.insert(call("second", 2024, 3))
	l.insert(call("third", 2024, 3))
	l.insert(call("later", 2024, 4))
	l.insert(call("fourth", 2024, 3))

	want := []string{"first", "second", "third", "fourth", "later"}
	if got := callees(&l); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestCallListLinks(t *testing.T) {
	var l callList
	l.insert(call("b", 2020, 2))
	l.insert(call("a", 2020, 1))
	l.insert(call("c", 2020, 3))

	if l.head.call.Callee != "a" || l.tail.call.Callee != "c" {
		t.Fatalf("head/tail = %s/%s, want a/c", l.head.call.Callee, l.tail.call.Callee)
	}

	// Walk backwards over the prev links.
	var back []string
	for cur := l.tail; cur != nil; cur = cur.prev {
		back = append(back, cur.call.Callee)
	}
	if want := []string{"c", "b", "a"}; !slices.Equal(back, want) {
		t.Errorf("backward walk = %v, want %v", back, want)
	}
}

func TestCallListSlice(t *testing.T) {
	var l callList
	for i, callee := range []string{"a", "b", "c", "d", "e"} {
		l.insert(call(callee, 2020, i+1))
	}

	cases := []struct {
		name       string
		start, end int
		want       []string
	}{
		{"middle", 1, 3, []string{"b", "c", "d"}},
		{"full", 0, 4, []string{"a", "b", "c", "d", "e"}},
		{"single", 2, 2, []string{"c"}},
		{"past tail", 3, 99, []string{"d", "e"}},
		{"inverted", 3, 1, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for c := range l.slice(tc.start, tc.end) {
				got = append(got, c.Callee)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("slice(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestCallListRelease(t *testing.T) {
	var l callList
	l.insert(call("a", 2020, 1))
	l.insert(call("b", 2020, 2))

	l.release()

	if l.head != nil || l.tail != nil || l.size != 0 {
		t.Error("list not empty after release")
	}
	for range l.all() {
		t.Fatal("iteration yielded calls after release")
	}

	l.insert(call("c", 2021, 1))
	if got := callees(&l); !slices.Equal(got, []string{"c"}) {
		t.Errorf("reuse after release = %v, want [c]", got)
	}
}
