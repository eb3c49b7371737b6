package advisor

import (
	"encoding/json"
	"strings"
)

// ExtractJSONArray unmarshals a JSON array out of a model response into dst.
// Models routinely wrap their output in ```json fences or surround it with
// prose, so it falls back to the outermost bracket pair before giving up.
func ExtractJSONArray(text string, dst any) error {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if err := json.Unmarshal([]byte(s), dst); err == nil {
		return nil
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return json.Unmarshal([]byte(s), dst) // surface the original error
	}
	return json.Unmarshal([]byte(s[start:end+1]), dst)
}
