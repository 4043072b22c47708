package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"edgefinder/internal/catalog"
)

func main() {
	dbPath := flag.String("db", "catalog.db", "SQLite file to (re)seed with the fixture catalog")
	flag.Parse()

	s, err := catalog.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	defer s.Close()

	games, props, err := s.Counts(context.Background())
	if err != nil {
		log.Fatalf("verify catalog: %v", err)
	}
	fmt.Printf("Seeded %s: %d games, %d props\n", *dbPath, games, props)
}
