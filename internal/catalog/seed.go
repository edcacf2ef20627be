package catalog

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads a YAML seed file.
func LoadSeed(path string) (SeedData, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return DecodeSeed(f)
}

// DecodeSeed parses seed YAML and rejects documents that would break the API contract.
func DecodeSeed(r io.Reader) (SeedData, error) {
	var data SeedData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && err != io.EOF {
		return SeedData{}, fmt.Errorf("decode seed: %w", err)
	}

	seen := map[int64]bool{}
	for _, it := range data.Software {
		if it.ID == 0 || it.Name == "" {
			return SeedData{}, fmt.Errorf("software entries need id and name")
		}
		if seen[it.ID] {
			return SeedData{}, fmt.Errorf("duplicate software id %d", it.ID)
		}
		seen[it.ID] = true
	}
	// Dates are stored as RFC3339 so string ordering matches time ordering.
	for i, it := range data.Releases {
		day := time.Now().UTC()
		if it.ReleaseDate != "" {
			parsed, err := ParseReleaseDate(it.ReleaseDate)
			if err != nil {
				return SeedData{}, fmt.Errorf("release %d: %w", it.ID, err)
			}
			day = parsed.UTC()
		}
		data.Releases[i].ReleaseDate = day.Format(time.RFC3339)
	}
	return data, nil
}
