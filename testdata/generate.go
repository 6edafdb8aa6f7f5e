//go:build ignore

// Generates sample.parquet for trying the tool by hand:
//
//	go run testdata/generate.go
package main

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Sample struct {
	RandomInts   int64   `parquet:"random_ints"`
	RandomFloats float64 `parquet:"random_floats"`
	Category     string  `parquet:"A_B_or_C"`
}

func main() {
	rows := make([]Sample, 100)
	for i := range rows {
		rows[i] = Sample{
			RandomInts:   rand.Int64N(100),
			RandomFloats: rand.Float64(),
			Category:     []string{"A", "B", "C"}[rand.IntN(3)],
		}
	}

	file, err := os.Create("testdata/sample.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Sample](file,
		parquet.KeyValueMetadata("origin", "testdata/generate.go"))
	if _, err := writer.Write(rows); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated testdata/sample.parquet with %d rows", len(rows))
}
