package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"teluguspell/internal/config"
	"teluguspell/internal/speller"
)

var testCases = []struct {
	text string
	note string
}{
	{"భారత్ ఒక మహాన దేసం. ఇక్కడ తెలుగు బాష మాట్లాడతారు.", "మహాన, దేసం, బాష"},
	{"రాముడు అతనికి సహాసయం చేసాడు.", "సహాసయం"},
	{"పుస్తకం చదువకునాడు.", "చదువకునాడు"},
	{"ఆమె పాటలు అందగా పాడింది.", "అందగా"},
	{"ప్రపంచంలో కంటెకన్నా కమ్యూనికేషన్ చాలా ముఖయం.", "కంటెకన్నా, ముఖయం"},
}

func main() {
	cfg, err := config.Load(getenv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("loading word model from %s", cfg.Model.Path)
	model, err := speller.LoadModel(cfg.Model.Path)
	if err != nil {
		if errors.Is(err, speller.ErrModelNotFound) {
			log.Fatalf("model file not found at %s; run buildmodel first", cfg.Model.Path)
		}
		log.Fatalf("load model: %v", err)
	}
	log.Printf("model loaded with %d unique words", model.Size())
	if model.Total() == 0 {
		log.Fatalf("model is empty; rebuild it before correcting text")
	}

	sp := speller.New(model)
	menu(sp, bufio.NewScanner(os.Stdin))
}

func menu(sp *speller.Speller, in *bufio.Scanner) {
	for {
		fmt.Println()
		fmt.Println("Telugu Spell Checker")
		fmt.Println("  1. Run predefined test cases")
		fmt.Println("  2. Enter custom text")
		fmt.Println("  3. Exit")
		fmt.Print("Choice: ")
		if !in.Scan() {
			return
		}
		switch strings.TrimSpace(in.Text()) {
		case "1":
			runTestCases(sp)
		case "2":
			runCustom(sp, in)
		case "3":
			return
		default:
			fmt.Println("invalid choice, enter 1, 2 or 3")
		}
	}
}

func runTestCases(sp *speller.Speller) {
	for i, tc := range testCases {
		fmt.Printf("\nTest case %d (focus: %s)\n", i+1, tc.note)
		printResult(sp.CorrectText(tc.text))
	}
}

func runCustom(sp *speller.Speller, in *bufio.Scanner) {
	fmt.Print("Text: ")
	if !in.Scan() {
		return
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		return
	}
	printResult(sp.CorrectText(text))
}

func printResult(res speller.CorrectionResult) {
	fmt.Println("Original:  ", res.Original)
	fmt.Println("Corrected: ", res.Corrected)
	if len(res.Candidates) == 0 {
		fmt.Println("No corrections were needed.")
		return
	}
	for misspelled, candidates := range res.Candidates {
		top := candidates
		suffix := ""
		if len(top) > 3 {
			top = top[:3]
			suffix = "..."
		}
		fmt.Printf("  %q -> best %q, candidates: %s%s\n",
			misspelled, candidates[0], strings.Join(top, ", "), suffix)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
