package models

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateCount(t *testing.T) {
	gen := NewQuestionGenerator(rand.NewSource(1))

	for _, count := range []int{1, 10, 50} {
		questions := gen.Generate(count)
		if len(questions) != count {
			t.Errorf("Generate(%d) returned %d questions", count, len(questions))
		}
	}
}

// parseQuestion splits "a <op> b = ?" back into its parts.
func parseQuestion(t *testing.T, text string) (a int, op string, b int) {
	t.Helper()
	if _, err := fmt.Sscanf(text, "%d %s %d = ?", &a, &op, &b); err != nil {
		t.Fatalf("unparseable question text %q: %v", text, err)
	}
	if !strings.HasSuffix(text, "= ?") {
		t.Fatalf("question text %q missing prompt suffix", text)
	}
	return a, op, b
}

func TestGeneratedQuestionProperties(t *testing.T) {
	gen := NewQuestionGenerator(rand.NewSource(42))
	seen := map[string]bool{}

	for _, q := range gen.Generate(2000) {
		a, op, b := parseQuestion(t, q.Text)
		seen[op] = true

		switch op {
		case "×":
			if a < 1 || a > 9 || b < 1 || b > 9 {
				t.Errorf("multiplication operands out of range: %q", q.Text)
			}
			if q.Answer != a*b {
				t.Errorf("wrong product for %q: %d", q.Text, q.Answer)
			}
		case "+":
			if a < 2 || a > 99 || b < 2 || b > 99 {
				t.Errorf("addition operands out of range: %q", q.Text)
			}
			if q.Answer != a+b {
				t.Errorf("wrong sum for %q: %d", q.Text, q.Answer)
			}
		case "−":
			if a < 2 || a > 99 || b < 2 || b > a {
				t.Errorf("subtraction operands out of range: %q", q.Text)
			}
			if q.Answer != a-b || q.Answer < 0 {
				t.Errorf("wrong difference for %q: %d", q.Text, q.Answer)
			}
		case "÷":
			if b < 2 || b > 12 {
				t.Errorf("divisor out of range: %q", q.Text)
			}
			if q.Answer < 2 || q.Answer > 12 {
				t.Errorf("quotient out of range: %q -> %d", q.Text, q.Answer)
			}
			if a%b != 0 || a/b != q.Answer {
				t.Errorf("division not exact for %q: %d", q.Text, q.Answer)
			}
		default:
			t.Errorf("unexpected operator %q in %q", op, q.Text)
		}
	}

	for _, op := range []string{"×", "+", "−", "÷"} {
		if !seen[op] {
			t.Errorf("operator %q never generated", op)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	first := NewQuestionGenerator(rand.NewSource(7)).Generate(20)
	second := NewQuestionGenerator(rand.NewSource(7)).Generate(20)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different questions at %d: %v vs %v",
				i, first[i], second[i])
		}
	}
}

func TestAnswerString(t *testing.T) {
	q := Question{Text: "3 × 4 = ?", Answer: 12}
	if got := q.AnswerString(); got != "12" {
		t.Errorf("AnswerString() = %q, want %q", got, "12")
	}
}
