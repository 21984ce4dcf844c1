package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/jmonzon-gt/distribuidores/gen/ent",
			Schema:  "github.com/jmonzon-gt/distribuidores/db/ent/schema",
			Features: []gen.Feature{
				gen.FeatureLock,
			},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
