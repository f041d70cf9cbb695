//go:build ignore

// Command gen-termdict turns a word list into the sorted, deduplicated
// form a term dictionary expects, one term per line.
// Usage: go run scripts/gen-termdict.go [-lower] <wordlist.txt>
//
// Lines are trimmed, optionally lowercased, empty lines and duplicates
// dropped. Output goes to stdout for redirection into a dictionary file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
)

func main() {
	lower := flag.Bool("lower", false, "lowercase terms before sorting")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/gen-termdict.go [-lower] <wordlist.txt>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if *lower {
			term = strings.ToLower(term)
		}
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sort.Strings(terms)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, term := range terms {
		fmt.Fprintln(w, term)
	}
}
