package openai

import (
	"encoding/json"
	"fmt"
)

const mapperPromptTemplate = `You are a specialty coffee expert helping map barista jargon to specific tasting notes and processes.

Given a search term, return the most relevant tasting notes and coffee processes that match.

Available tasting notes:
%s

Available processes:
%s

Return JSON with:
- mappedNotes: array of specific notes from the list above (max 8)
- mappedProcesses: array of specific processes from the list above (max 3)

Examples:
- "funky" -> {"mappedNotes": ["fermented", "wild", "yeasty", "boozy"], "mappedProcesses": ["natural", "anaerobic"]}
- "berry bomb" -> {"mappedNotes": ["berry", "blueberry", "strawberry", "raspberry", "blackberry", "jammy"], "mappedProcesses": ["natural"]}
- "clean cup" -> {"mappedNotes": ["tea", "crisp", "bright", "fresh"], "mappedProcesses": ["washed"]}
- "jammy" -> {"mappedNotes": ["strawberry", "raspberry", "red wine", "cherry", "berry"], "mappedProcesses": ["natural"]}

Return ONLY valid JSON, no explanation.`

// buildMapperPrompt renders the system prompt with the fixed note and
// process catalogs inlined as JSON arrays.
func buildMapperPrompt(notes, processes []string) string {
	notesJSON, _ := json.MarshalIndent(notes, "", "  ")
	processesJSON, _ := json.MarshalIndent(processes, "", "  ")
	return fmt.Sprintf(mapperPromptTemplate, notesJSON, processesJSON)
}
