package worklist

import "testing"

func TestWorklistFIFO(t *testing.T) {
	W := Empty[int]()
	for _, i := range []int{3, 1, 2} {
		W.Add(i)
	}

	for _, expected := range []int{3, 1, 2} {
		if next := W.GetNext(); next != expected {
			t.Errorf("Dequeued %d, expected %d", next, expected)
		}
	}
	if !W.IsEmpty() {
		t.Errorf("Worklist should be empty, but has %d elements", W.Len())
	}
}

func TestWorklistAddUnique(t *testing.T) {
	W := Empty[string]()

	if !W.AddUnique("a") {
		t.Error("Adding a to an empty worklist failed")
	}
	if W.AddUnique("a") {
		t.Error("a was added twice")
	}
	W.AddUnique("b")
	if W.Len() != 2 {
		t.Errorf("Worklist has %d elements, expected 2", W.Len())
	}

	W.GetNext()
	if W.Contains("a") {
		t.Error("a is still queued after being dequeued")
	}
	if !W.AddUnique("a") {
		t.Error("a could not be re-added after being dequeued")
	}
}

func TestWorklistDuplicateAdd(t *testing.T) {
	W := Empty[int]()
	W.Add(1)
	W.Add(1)

	W.GetNext()
	if !W.Contains(1) {
		t.Error("The second copy of 1 should still be queued")
	}
	W.GetNext()
	if W.Contains(1) {
		t.Error("1 should no longer be queued")
	}
}

func TestWorklistProcess(t *testing.T) {
	W := Empty[int]()
	W.AddUnique(0)
	W.AddUnique(1)

	visited := []int{}
	W.Process(func(next int, add func(int)) {
		visited = append(visited, next)
		if next < 4 {
			add(next + 2)
		}
		if next == 1 {
			// Still pending.
			add(2)
		}
	})

	expected := []int{0, 1, 2, 3, 4, 5}
	if len(visited) != len(expected) {
		t.Fatalf("Visited %v, expected %v", visited, expected)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("Visited %v, expected %v", visited, expected)
			break
		}
	}
}
