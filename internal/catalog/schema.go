package catalog

// payloadSchema defines the JSON schema a question payload must satisfy
// before it is decoded. Semantic rules (unique labels, answer membership)
// are checked afterwards by Validate.
var payloadSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type": "integer",
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"score": map[string]any{
				"type": []any{"number", "null"},
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label": map[string]any{"type": "string", "minLength": 1},
						"text":  map[string]any{"type": "string"},
					},
					"required":             []any{"label", "text"},
					"additionalProperties": false,
				},
			},
			"answer": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"label": map[string]any{"type": "string", "minLength": 1},
					"text":  map[string]any{"type": "string"},
				},
				"required":             []any{"label", "text"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"id", "question", "options", "answer"},
		"additionalProperties": false,
	},
}
