// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// Load reads an activity catalog from a JSON file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse validates raw catalog JSON and unmarshals it.
func Parse(data []byte) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &cat, nil
}

// Validate checks raw catalog JSON against the catalog schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(catalogSchema)
	documentLoader := gojsonschema.NewStringLoader(string(data))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("catalog validation failed: %v", errs)
	}

	return nil
}

// Default returns the built-in activity catalog used when no catalog file is
// configured. Participant lists are the initial rosters, not caps.
func Default() *Catalog {
	return &Catalog{
		Version:     "1.0",
		LastUpdated: "2025-09-01",
		Activities: []Activity{
			{
				Name:            "Chess Club",
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
			{
				Name:            "Programming Class",
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
			{
				Name:            "Gym Class",
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
			{
				Name:            "Basketball",
				Description:     "Practice drills and play basketball games with the school team",
				Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 15,
				Participants:    []string{"alex@mergington.edu", "noah@mergington.edu"},
			},
			{
				Name:            "Soccer",
				Description:     "Join the school soccer team and compete in local leagues",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 22,
				Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
			},
			{
				Name:            "Art Club",
				Description:     "Explore painting, drawing, and other visual arts",
				Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
			},
			{
				Name:            "Drama Club",
				Description:     "Act, direct, and produce the school's theater performances",
				Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"mia@mergington.edu", "lucas@mergington.edu"},
			},
			{
				Name:            "Robotics Club",
				Description:     "Design, build, and program robots for competitions",
				Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
				MaxParticipants: 16,
				Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
			},
			{
				Name:            "Debate Team",
				Description:     "Develop argumentation skills and compete in debate tournaments",
				Schedule:        "Fridays, 4:00 PM - 5:30 PM",
				MaxParticipants: 12,
				Participants:    []string{"charlotte@mergington.edu", "james@mergington.edu"},
			},
		},
	}
}
