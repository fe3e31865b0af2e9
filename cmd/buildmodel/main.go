package main

import (
	"flag"
	"log"

	"teluguspell/internal/modelbuilder"
)

func main() {
	corpus := flag.String("corpus", "tewiki-latest-pages-articles.xml", "path to the MediaWiki XML dump")
	out := flag.String("out", "telugu_word_model.json", "path for the JSON word model")
	flag.Parse()

	if err := modelbuilder.Build(*corpus, *out); err != nil {
		log.Fatalf("build model: %v", err)
	}
}
