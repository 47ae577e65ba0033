package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathpath/internal/difficulty"
)

const systemPrompt = `You write math practice exercises for students preparing for an exam.

Rules:
- Generate a single exercise for the given subtopic and difficulty.
- Difficulty is a tier (easy, medium, hard) and a level within the tier (1 to 3). Level 3 of a tier should be close to level 1 of the next tier.
- Use plain text for math. Use / for fractions, * for multiplication, ^ for powers.
- The answer must be correct and in simplest form. When there are several solutions list them separated by commas, e.g. "x = 3, -3".
- The hint must help without giving the answer away.
- The explanation shows the solution step by step.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message for one exercise.
func buildUserMessage(in GenerateInput, maxPrior int) string {
	var b strings.Builder

	name := in.SubtopicName
	if name == "" {
		name = in.SubtopicID
	}
	fmt.Fprintf(&b, "Subtopic: %s\n", name)
	if in.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", in.Description)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty.NewState(in.Tier, in.SubLevel))

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(in.PriorQuestions, maxPrior))

	return b.String()
}

// buildDedup formats the most recent max prior questions, or "None".
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
