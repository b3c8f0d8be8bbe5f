// Package prompt renders the oracle prompts used while narrowing a diagnosis.
// Wording is free to change; callers depend only on the inputs each prompt carries.
package prompt

import (
	"fmt"
	"strings"

	"vehicle-diagnosis-be/pkg/store"
)

// Question asks for one new discriminating question about the candidates
func Question(candidates []store.Candidate, asked []string) string {
	var p strings.Builder

	p.WriteString("<system>\n")
	p.WriteString("You are an automotive service advisor narrowing down a vehicle fault.\n")
	p.WriteString("Ask the customer ONE short question that best tells the possible problems apart.\n")
	p.WriteString("</system>\n\n")

	writeCandidates(&p, candidates)

	p.WriteString("<asked_questions>\n")
	if len(asked) == 0 {
		p.WriteString("NONE\n")
	}
	for i, q := range asked {
		fmt.Fprintf(&p, "%d. %s\n", i+1, q)
	}
	p.WriteString("</asked_questions>\n\n")

	p.WriteString("<rules>\n")
	p.WriteString("- Ask about observable symptoms: sounds, smells, warning lights, timing, driving conditions.\n")
	p.WriteString("- Do NOT ask a yes/no question.\n")
	p.WriteString("- Do NOT repeat or rephrase an asked question.\n")
	p.WriteString("- Reply with the question text only.\n")
	p.WriteString("</rules>\n")

	return p.String()
}

// Weights asks for per-candidate weight changes given one answered question
func Weights(candidates []store.Candidate, question, answer string) string {
	var p strings.Builder

	p.WriteString("<system>\n")
	p.WriteString("You are an automotive diagnostic assistant.\n")
	p.WriteString("Judge how the customer's answer changes the likelihood of each possible problem.\n")
	p.WriteString("</system>\n\n")

	writeCandidates(&p, candidates)

	p.WriteString("<exchange>\n")
	fmt.Fprintf(&p, "QUESTION: %s\n", question)
	fmt.Fprintf(&p, "ANSWER: %s\n", answer)
	p.WriteString("</exchange>\n\n")

	p.WriteString("<output_format>\n")
	p.WriteString("Return ONLY a JSON object mapping problem id to a weight change.\n")
	p.WriteString("Use values between -0.2 (much less likely) and 0.3 (much more likely).\n")
	p.WriteString("Omit problems the answer says nothing about.\n")
	if len(candidates) > 0 {
		fmt.Fprintf(&p, "Example: {\"%s\": 0.2}\n", candidates[0].ProblemID)
	}
	p.WriteString("</output_format>\n")

	return p.String()
}

func writeCandidates(p *strings.Builder, candidates []store.Candidate) {
	p.WriteString("<possible_problems>\n")
	for _, c := range candidates {
		fmt.Fprintf(p, "- id=%s name=%q: %s\n", c.ProblemID, c.ProblemName, c.Description)
	}
	p.WriteString("</possible_problems>\n\n")
}
