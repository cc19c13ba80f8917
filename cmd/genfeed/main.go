// Command genfeed generates a synthetic raw feed fixture exercising the
// encoding quirks seen in real retailer feeds: string-encoded coordinates and
// prices, zero and negative placeholder prices, junk price strings, and
// null-brand records. Useful for local pipeline runs and manual testing.
//
// Usage:
//
//	go run ./cmd/genfeed -stations 50 -out data/mock/feed.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

var brandPool = []string{
	"bp", "  Shell ", "TESCO", "esso", "morrisons", "asda", "Rontec", "MFG",
}

var gradePool = []string{"E5", "E10", "B7", "SDV"}

func main() {
	stations := flag.Int("stations", 25, "number of station records to generate")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "", "output path (defaults to stdout)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	feed := map[string]any{
		"last_updated": time.Date(2024, time.November, 27, 11, 45, 32, 0, time.UTC).Format("02/01/2006 15:04:05"),
		"stations":     generateStations(rng, *stations),
	}

	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d stations to %s", *stations, *out)
}

func generateStations(rng *rand.Rand, n int) []map[string]any {
	records := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		rec := map[string]any{
			"site_id":  fmt.Sprintf("gb-%05d", i+1),
			"brand":    brandPool[rng.Intn(len(brandPool))],
			"address":  fmt.Sprintf("%d High Street", rng.Intn(200)+1),
			"postcode": fmt.Sprintf("AB%d %dCD", rng.Intn(9)+1, rng.Intn(9)+1),
			"location": generateLocation(rng),
			"prices":   generatePrices(rng),
		}
		// Roughly one in ten records has a null brand, as real feeds do.
		if rng.Intn(10) == 0 {
			rec["brand"] = nil
		}
		records = append(records, rec)
	}
	return records
}

// generateLocation emits coordinates as numbers or numeric strings with
// equal probability.
func generateLocation(rng *rand.Rand) map[string]any {
	lat := 50.0 + rng.Float64()*8
	lon := -5.0 + rng.Float64()*6
	loc := map[string]any{"latitude": lat, "longitude": lon}
	if rng.Intn(2) == 0 {
		loc["latitude"] = fmt.Sprintf("%.6f", lat)
		loc["longitude"] = fmt.Sprintf("%.6f", lon)
	}
	return loc
}

func generatePrices(rng *rand.Rand) map[string]any {
	prices := make(map[string]any, len(gradePool))
	for _, grade := range gradePool {
		price := 120.0 + rng.Float64()*40
		switch rng.Intn(6) {
		case 0:
			prices[grade] = fmt.Sprintf("%.1f", price) // string-encoded
		case 1:
			prices[grade] = 0 // placeholder, filtered out downstream
		case 2:
			prices[grade] = "n/a" // junk, filtered out downstream
		default:
			prices[grade] = price
		}
	}
	return prices
}
