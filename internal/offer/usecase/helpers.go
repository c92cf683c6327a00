package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"moving-offer-service/internal/model"
	"moving-offer-service/internal/offer"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { and last }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// formatNumber renders a number the way it reads in an offer: "3.5", "3", "124".
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// renderDetailsBlock renders the job parameters as prompt bullet lines.
func renderDetailsBlock(job offer.GenerateOfferInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "- Rooms: %s\n", formatNumber(job.Rooms))
	fmt.Fprintf(&sb, "- From: %s\n", job.AddressFrom)
	fmt.Fprintf(&sb, "- To: %s\n", job.AddressTo)
	fmt.Fprintf(&sb, "- Lift available: %s\n", yesNo(job.HasLift))
	fmt.Fprintf(&sb, "- Floor: %d\n", job.Floor)
	fmt.Fprintf(&sb, "- Assembly included: %s\n", yesNo(job.IncludeAssembly))
	fmt.Fprintf(&sb, "- Express service: %s\n", yesNo(job.ExpressService))
	fmt.Fprintf(&sb, "- Heavy items: %d", job.HeavyItems)
	return sb.String()
}

// renderTasksBlock renders the priced tasks as prompt bullet lines.
func renderTasksBlock(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("- %s (id: %d): %s", t.Name, t.ID, t.Description))
	}
	return strings.Join(lines, "\n")
}
