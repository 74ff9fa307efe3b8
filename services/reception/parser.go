package reception

import (
	"encoding/json"
	"strings"

	"ybhotels/models"

	"go.uber.org/zap"
)

// CannedApology replaces model output that failed to parse but still looks
// JSON-shaped, so malformed structure never reaches the guest.
const CannedApology = "I'm sorry, I had a little trouble with that. Could you say it again?"

// Reply is the parsed form of a model response: either plain text to speak
// verbatim, or a function call with an accompanying user-facing sentence.
type Reply struct {
	Text         string
	FunctionCall *models.FunctionCall
}

// modelEnvelope is the JSON shape the model is instructed to produce when
// calling a function.
type modelEnvelope struct {
	FunctionCall *models.FunctionCall `json:"functionCall"`
	UserResponse string               `json:"userResponse"`
}

// ParseModelReply extracts a Reply from raw model output. The model is
// untrusted: it may wrap JSON in prose or code fences, truncate it, or
// return plain text. Extraction takes the slice between the first '{' and
// the last '}'; anything that fails to parse is treated as plain text, and
// plain text that still looks JSON-shaped is swapped for a canned apology.
func ParseModelReply(raw string) Reply {
	text := strings.TrimSpace(raw)
	text = stripCodeFences(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		candidate := text[start : end+1]
		var env modelEnvelope
		if err := json.Unmarshal([]byte(candidate), &env); err == nil {
			if env.FunctionCall != nil && env.FunctionCall.Name != "" {
				if env.FunctionCall.Parameters == nil {
					env.FunctionCall.Parameters = map[string]interface{}{}
				}
				return Reply{Text: env.UserResponse, FunctionCall: env.FunctionCall}
			}
			if env.UserResponse != "" {
				return Reply{Text: env.UserResponse}
			}
		} else {
			zap.L().Debug("model reply JSON extraction failed", zap.Error(err))
		}
	}

	if looksJSONShaped(text) {
		zap.L().Warn("model reply looked structured but did not parse; substituting apology")
		return Reply{Text: CannedApology}
	}
	return Reply{Text: text}
}

func stripCodeFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func looksJSONShaped(text string) bool {
	return strings.Contains(text, `"functionCall"`) || strings.Contains(text, `"userResponse"`)
}
