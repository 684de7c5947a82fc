package session

import "testing"

func TestIsRussian(t *testing.T) {
	if !IsRussian("привет") {
		t.Fatalf("expected привет to be russian")
	}
	if IsRussian("hello") {
		t.Fatalf("expected hello not to be russian")
	}
	for _, text := range []string{"ёж", "Ёлка", "hello мир", "Я"} {
		if !IsRussian(text) {
			t.Fatalf("expected %q to be russian", text)
		}
	}
	for _, text := range []string{"", "123", "ÿ", "ǅ"} {
		if IsRussian(text) {
			t.Fatalf("expected %q not to be russian", text)
		}
	}
}

func TestReduceCountsCorrectAndTotal(t *testing.T) {
	c := Reduce(Counters{}, State{Target: "hello"})
	c = Reduce(c, State{Target: "hello", Input: "he"})
	c = Reduce(c, State{Target: "hello", Input: "hex"})
	if c.Correct != 2 {
		t.Fatalf("expected 2 correct, got %d", c.Correct)
	}
	if c.Total != 3 {
		t.Fatalf("expected total 3, got %d", c.Total)
	}
}

func TestReduceCorrectnessIsSticky(t *testing.T) {
	c := Reduce(Counters{}, State{Target: "ab", Input: "a"})
	c = Reduce(c, State{Target: "ab", Input: "x"})
	if c.Correct != 1 {
		t.Fatalf("expected broken index to stay counted, got %d", c.Correct)
	}
	c = Reduce(c, State{Target: "ab", Input: "a"})
	if c.Correct != 1 {
		t.Fatalf("expected re-fixed index to count once, got %d", c.Correct)
	}
	c = Reduce(c, State{Target: "ab", Input: "ab"})
	if c.Correct != 2 {
		t.Fatalf("expected 2 correct, got %d", c.Correct)
	}
}

func TestReduceBoundsByShorterSequence(t *testing.T) {
	c := Reduce(Counters{}, State{Target: "ab", Input: "abcdef"})
	if c.Correct != 2 || c.Total != 6 {
		t.Fatalf("unexpected counters: %+v", c)
	}
}

func TestReduceDoesNotAliasPreviousCounters(t *testing.T) {
	base := Reduce(Counters{}, State{Target: "ab", Input: "a"})
	next := Reduce(base, State{Target: "ab", Input: "ab"})
	again := Reduce(base, State{Target: "ab", Input: "ab"})
	if next.Correct != 2 || again.Correct != 2 {
		t.Fatalf("reducing the same counters twice diverged: %d vs %d", next.Correct, again.Correct)
	}
}

func TestReduceKeepsPosition(t *testing.T) {
	c := Counters{Position: 4}
	c = Reduce(c, State{Target: "hello", Input: "h"})
	if c.Position != 4 {
		t.Fatalf("reduce must not move the cursor, got %d", c.Position)
	}
}

func TestReduceFreezesScriptAtFirstInput(t *testing.T) {
	c := Reduce(Counters{}, State{Target: "привет"})
	if !c.Russian {
		t.Fatalf("expected russian for привет")
	}
	c = Reduce(c, State{Target: "привет", Input: "hello"})
	if !c.Russian {
		t.Fatalf("script flag changed after input started")
	}

	c = Reduce(Counters{}, State{Target: "hello"})
	c = Reduce(c, State{Target: "hello", Input: "при"})
	if c.Russian {
		t.Fatalf("script flag changed after input started")
	}
}

func TestMarks(t *testing.T) {
	marks := Marks(State{Target: "abcd", Input: "abx"})
	want := []Mark{MarkCorrect, MarkCorrect, MarkIncorrect, MarkPending}
	if len(marks) != len(want) {
		t.Fatalf("expected %d marks, got %d", len(want), len(marks))
	}
	for i := range want {
		if marks[i] != want[i] {
			t.Fatalf("mark %d: expected %v, got %v", i, want[i], marks[i])
		}
	}
}

func TestMarksCyrillicByRune(t *testing.T) {
	marks := Marks(State{Target: "ёж", Input: "ёш"})
	if marks[0] != MarkCorrect || marks[1] != MarkIncorrect {
		t.Fatalf("unexpected marks: %v", marks)
	}
}
