// Package modelbuilder turns a MediaWiki XML dump into the JSON word
// frequency model consumed by the speller.
package modelbuilder

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
)

const progressEvery = 5000

var teluguWord = regexp.MustCompile(`[\x{0C00}-\x{0C7F}]+`)

// Tokenize extracts the Telugu-script words from text: every maximal run
// of code points inside the Telugu Unicode block.
func Tokenize(text string) []string {
	return teluguWord.FindAllString(text, -1)
}

// BuildCounts streams an XML dump from r and accumulates word counts from
// every <text> element. The dump is never held in memory; only the counts
// and the current text element are.
func BuildCounts(r io.Reader) (map[string]int, error) {
	dec := xml.NewDecoder(r)
	counts := make(map[string]int)

	var text strings.Builder
	inText := false
	pages := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse corpus: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "text" {
				inText = true
				text.Reset()
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "text":
				inText = false
				for _, w := range Tokenize(text.String()) {
					counts[w]++
				}
			case "page":
				pages++
				if pages%progressEvery == 0 {
					log.Printf("processed %d pages...", pages)
				}
			}
		}
	}
	log.Printf("processing complete: %d pages, %d unique words", pages, len(counts))
	return counts, nil
}

// WriteModel writes counts to path in the JSON format LoadModel consumes.
func WriteModel(path string, counts map[string]int) error {
	data, err := json.MarshalIndent(counts, "", "    ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// Build parses the corpus at corpusPath and writes the model to outPath.
func Build(corpusPath, outPath string) error {
	f, err := os.Open(corpusPath)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	log.Printf("parsing XML corpus from %s", corpusPath)
	counts, err := BuildCounts(f)
	if err != nil {
		return err
	}
	log.Printf("saving model to %s", outPath)
	return WriteModel(outPath, counts)
}
