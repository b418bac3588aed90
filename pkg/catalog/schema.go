// pkg/catalog/schema.go
package catalog

// Catalog is the serialized seed form of the activity registry.
type Catalog struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"last_updated"`
	Activities  []Activity `json:"activities"`
}

// Activity describes one extracurricular offering.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// catalogSchema is the JSON Schema every catalog document must satisfy.
var catalogSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"activities"},
	"properties": map[string]interface{}{
		"version":      map[string]interface{}{"type": "string"},
		"last_updated": map[string]interface{}{"type": "string"},
		"activities": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []string{"name", "description", "schedule", "max_participants", "participants"},
				"properties": map[string]interface{}{
					"name":             map[string]interface{}{"type": "string", "minLength": 1},
					"description":      map[string]interface{}{"type": "string"},
					"schedule":         map[string]interface{}{"type": "string"},
					"max_participants": map[string]interface{}{"type": "integer", "minimum": 1},
					"participants": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	},
}
