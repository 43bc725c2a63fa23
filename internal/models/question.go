package models

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Question is an immutable quiz item: display text plus the expected integer
// answer. Generated once per round, never mutated.
type Question struct {
	Text   string
	Answer int
}

// AnswerString returns the answer in the decimal form the player must type.
func (q Question) AnswerString() string {
	return strconv.Itoa(q.Answer)
}

// Operator identifies the arithmetic operation of a generated question.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

const operatorCount = 4

// QuestionGenerator produces random arithmetic questions. The rand source is
// injected so rounds are reproducible under test.
type QuestionGenerator struct {
	rng *rand.Rand
}

// NewQuestionGenerator creates a generator backed by the given source.
func NewQuestionGenerator(source rand.Source) *QuestionGenerator {
	return &QuestionGenerator{rng: rand.New(source)}
}

// Generate produces exactly count questions in generation order.
func (g *QuestionGenerator) Generate(count int) []Question {
	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, g.next())
	}
	return questions
}

// next picks an operator uniformly and builds one question.
//
// Operand ranges guarantee clean answers: subtraction never goes negative and
// division is always exact.
func (g *QuestionGenerator) next() Question {
	switch Operator(g.rng.Intn(operatorCount)) {
	case OpMul:
		a := g.intn(1, 9)
		b := g.intn(1, 9)
		return Question{
			Text:   fmt.Sprintf("%d × %d = ?", a, b),
			Answer: a * b,
		}
	case OpAdd:
		a := g.intn(2, 99)
		b := g.intn(2, 99)
		return Question{
			Text:   fmt.Sprintf("%d + %d = ?", a, b),
			Answer: a + b,
		}
	case OpSub:
		a := g.intn(2, 99)
		b := g.intn(2, a)
		return Question{
			Text:   fmt.Sprintf("%d − %d = ?", a, b),
			Answer: a - b,
		}
	default:
		divisor := g.intn(2, 12)
		answer := g.intn(2, 12)
		return Question{
			Text:   fmt.Sprintf("%d ÷ %d = ?", divisor*answer, divisor),
			Answer: answer,
		}
	}
}

// intn returns a uniform value in [lo, hi].
func (g *QuestionGenerator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
