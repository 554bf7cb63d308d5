package usecases

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Language models frequently wrap JSON in markdown fences, prepend prose, or
// emit javascript-style unquoted object keys. repairModelJSON normalizes all
// of that before handing the text to the JSON decoder.

var (
	codeFenceRe   = regexp.MustCompile("```(?:json)?")
	bareKeyRe     = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`)
	doubledKeyRe  = regexp.MustCompile(`"\\"(\w+)\\""\s*:`)
	rawErrorLimit = 300
)

// repairModelJSON extracts and cleans the first JSON object in raw and
// unmarshals it into out. The error on failure carries a truncated copy of
// the raw text so the offending reply is visible in logs.
func repairModelJSON(raw string, out interface{}) error {
	cleaned := codeFenceRe.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no JSON object in model output: %s", truncateRaw(raw))
	}
	cleaned = cleaned[start : end+1]

	cleaned = bareKeyRe.ReplaceAllString(cleaned, `$1"$2"$3`)
	cleaned = doubledKeyRe.ReplaceAllString(cleaned, `"$1":`)

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("model output is not valid JSON: %w: %s", err, truncateRaw(raw))
	}
	return nil
}

func truncateRaw(raw string) string {
	if len(raw) > rawErrorLimit {
		return raw[:rawErrorLimit]
	}
	return raw
}
