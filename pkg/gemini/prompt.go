package gemini

import "fmt"

// MovingAssistantSystemPrompt is the system instruction shared by both offer
// capabilities. The JSON-only constraint keeps responses machine-parseable.
const MovingAssistantSystemPrompt = `You are a professional moving company assistant for Umzugsfirma Zürich with expert knowledge of Swiss geography. Respond ONLY with valid JSON.`

// BuildDistancePrompt builds the prompt asking for a driving-distance estimate
// between two Swiss addresses.
func BuildDistancePrompt(addressFrom, addressTo string) string {
	return fmt.Sprintf(`Estimate the driving distance in km between the two Swiss addresses below.

From: %s
To: %s

Respond with this exact JSON structure:
{
  "km": <number>,
  "explanation": "<short explanation, e.g. Zürich to Bern via A1>"
}`, addressFrom, addressTo)
}

// BuildEnrichmentPrompt builds the prompt asking for enhanced task descriptions
// and an execution summary. The details and tasks blocks are pre-rendered by the
// caller so this package stays free of offer domain types.
func BuildEnrichmentPrompt(detailsBlock, tasksBlock, totalPrice string) string {
	return fmt.Sprintf(`Generate enhanced task descriptions and an execution summary for this moving offer.

Moving details:
%s

Current tasks:
%s

Total price: %s

Respond with this exact JSON structure:
{
  "enhancedTasks": [
    { "id": <number>, "name": "<string>", "description": "<enhanced description>" }
  ],
  "executionSummary": "<A 2-3 sentence professional summary of how the move will be executed>"
}`, detailsBlock, tasksBlock, totalPrice)
}
