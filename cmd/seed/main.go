// Command seed generates random traffic observation fixtures using the
// actual domain package, so fixture scores match real service behavior.
// Output goes to a JSON file (or stdout), or straight into a running server.
//
// Usage:
//
//	go run ./cmd/seed -count 100 -out testdata/observations.json
//	go run ./cmd/seed -count 100 -addr http://localhost:8080
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"

	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	count := flag.Int("count", 100, "number of observations to generate")
	seed := flag.Uint64("seed", 0, "random seed; 0 keeps the default source")
	lat := flag.Float64("lat", 17.385, "latitude of the seeded location")
	lon := flag.Float64("lon", 78.4867, "longitude of the seeded location")
	out := flag.String("out", "", "output path for the JSON fixture; empty writes to stdout")
	addr := flag.String("addr", "", "base URL of a running server to POST observations to instead of writing a file")
	flag.Parse()

	if *seed != 0 {
		domain.SetRandSeed(*seed)
		// Freeze the clock too, so timestamps are reproducible alongside values.
		domain.SetClock(clockwork.NewFakeClockAt(
			time.Date(2025, time.July, 26, 12, 0, 0, 0, time.UTC),
		))
		defer domain.SetClock(nil)
	}

	loc := domain.Coordinate{Latitude: *lat, Longitude: *lon}
	observations := make([]domain.Observation, *count)
	for i := range observations {
		observations[i] = domain.RandomObservation(loc)
	}

	if *addr != "" {
		return postObservations(*addr, observations)
	}
	return writeFixture(*out, observations)
}

func postObservations(baseURL string, observations []domain.Observation) error {
	client := &http.Client{Timeout: 10 * time.Second}
	for _, obs := range observations {
		body, err := json.Marshal(obs)
		if err != nil {
			return fmt.Errorf("marshal observation: %w", err)
		}
		resp, err := client.Post(baseURL+"/traffic/data", "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("post observation: %w", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("post observation: unexpected status %d", resp.StatusCode)
		}
	}
	log.Printf("posted %d observations to %s", len(observations), baseURL)
	return nil
}

func writeFixture(path string, observations []domain.Observation) error {
	data, err := json.MarshalIndent(observations, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	log.Printf("wrote %d observations to %s", len(observations), path)
	return nil
}
