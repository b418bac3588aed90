// cmd/tools/catalog-admin/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"activities-api/pkg/catalog"
)

var catalogPath string

func main() {
	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)

	for _, fs := range []*flag.FlagSet{initCmd, addCmd, updateCmd, validateCmd, listCmd} {
		fs.StringVar(&catalogPath, "path", "configs/activities.json", "Path to catalog file")
	}

	// Add command flags
	nameAdd := addCmd.String("name", "", "Activity name (e.g., Chess Club)")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Schedule (e.g., Fridays, 3:30 PM - 5:00 PM)")
	maxParticipants := addCmd.Int("max", 20, "Maximum participants (advisory)")

	// Update command flags
	nameUpdate := updateCmd.String("name", "", "Activity name to update")
	field := updateCmd.String("field", "", "Field to update (description, schedule, max)")
	value := updateCmd.String("value", "", "New value for the field")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		initCmd.Parse(os.Args[2:])
		if err := initCatalog(); err != nil {
			fmt.Printf("Error initializing catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote built-in catalog to %s\n", catalogPath)

	case "add":
		addCmd.Parse(os.Args[2:])
		if *nameAdd == "" || *description == "" || *schedule == "" {
			fmt.Println("Error: name, description, and schedule are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		activity := catalog.Activity{
			Name:            *nameAdd,
			Description:     *description,
			Schedule:        *schedule,
			MaxParticipants: *maxParticipants,
			Participants:    []string{},
		}
		if err := addActivity(&activity); err != nil {
			fmt.Printf("Error adding activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added activity: %s\n", *nameAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *nameUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: name, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateActivity(*nameUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated activity %s, field %s to %s\n", *nameUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateCatalog(); err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}

	case "list":
		listCmd.Parse(os.Args[2:])
		if err := listCatalog(); err != nil {
			fmt.Printf("Error listing catalog: %v\n", err)
			os.Exit(1)
		}

	case "help":
		fallthrough
	default:
		help()
	}
}

func initCatalog() error {
	if _, err := os.Stat(catalogPath); err == nil {
		return fmt.Errorf("catalog file %s already exists", catalogPath)
	}
	return saveCatalog(catalog.Default(), catalogPath)
}

func addActivity(activity *catalog.Activity) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		// If file doesn't exist, start a new catalog
		if os.IsNotExist(err) {
			cat = &catalog.Catalog{
				Version:    "1.0",
				Activities: []catalog.Activity{},
			}
		} else {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	for _, existing := range cat.Activities {
		if existing.Name == activity.Name {
			return fmt.Errorf("activity %q already exists", activity.Name)
		}
	}

	cat.Activities = append(cat.Activities, *activity)
	return saveCatalog(cat, catalogPath)
}

func updateActivity(name, field, value string) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	found := false
	for i := range cat.Activities {
		if cat.Activities[i].Name == name {
			found = true
			switch field {
			case "description":
				cat.Activities[i].Description = value
			case "schedule":
				cat.Activities[i].Schedule = value
			case "max":
				max, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid max value: %w", err)
				}
				cat.Activities[i].MaxParticipants = max
			default:
				return fmt.Errorf("unknown field: %s", field)
			}
			break
		}
	}

	if !found {
		return fmt.Errorf("activity %q not found", name)
	}

	return saveCatalog(cat, catalogPath)
}

func validateCatalog() error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	names := make(map[string]bool)
	for _, activity := range cat.Activities {
		if names[activity.Name] {
			return fmt.Errorf("duplicate activity name: %s", activity.Name)
		}
		names[activity.Name] = true
	}

	fmt.Printf("Catalog validation passed. Found %d activities.\n", len(cat.Activities))
	return nil
}

func listCatalog() error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	fmt.Printf("Catalog version %s (updated %s)\n", cat.Version, cat.LastUpdated)
	for _, activity := range cat.Activities {
		fmt.Printf("  %-20s %s  [%d/%d]\n",
			activity.Name, activity.Schedule, len(activity.Participants), activity.MaxParticipants)
	}
	return nil
}

// saveCatalog handles saving the catalog to file
func saveCatalog(cat *catalog.Catalog, path string) error {
	cat.LastUpdated = time.Now().Format("2006-01-02")

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

func help() {
	fmt.Printf("%s\n", `
Usage: catalog-admin <command> [flags]

Commands:
  init     Write the built-in default catalog to a file
  add      Add a new activity to the catalog
  update   Update an existing activity's field
  validate Validate the catalog file
  list     Print the catalog contents
  help     Show this help message

Examples:
  catalog-admin init -path configs/activities.json
  catalog-admin add -name "Photography Club" -description "Learn composition and editing" -schedule "Mondays, 3:30 PM - 5:00 PM" -max 18
  catalog-admin update -name "Photography Club" -field schedule -value "Tuesdays, 3:30 PM - 5:00 PM"
  catalog-admin validate -path configs/activities.json

Use 'catalog-admin <command> -h' for more information about a command.
`)
}
