// main.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Example main program for exercising the dawg module: reads a word
// list, builds and cleans a DAWG, reports statistics, and optionally
// serialises the result.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cloud.google.com/go/datastore"
	dawg "github.com/skraflhugur/dawg"
)

func main() {
	in := flag.String("in", "", "word list file to read (default: stdin)")
	out := flag.String("out", "", "file to write the serialised graph to (cleaned unless -wide)")
	wide := flag.Bool("wide", false, "keep the graph in wide (uncompacted) form and skip clean")
	datastoreName := flag.String("datastore-name", "", "if set, also persist the graph under this name in Cloud Datastore")
	flag.Parse()

	cfg, err := dawg.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	// Relative -in/-out paths resolve against the configured data directory.
	if *in != "" && !filepath.IsAbs(*in) {
		*in = filepath.Join(cfg.DataDir, *in)
	}
	if *out != "" && !filepath.IsAbs(*out) {
		*out = filepath.Join(cfg.DataDir, *out)
	}

	words, err := readWords(*in)
	if err != nil {
		log.Fatalf("reading word list: %v", err)
	}

	g := dawg.From(words...)
	log.Printf("built trie: %d words, %d nodes", len(words), g.Len())

	if !*wide {
		g.Clean()
		log.Printf("cleaned: %d nodes", g.Len())
	}

	if *out != "" {
		if err := writeGraph(g, *out, *wide); err != nil {
			log.Fatalf("writing %s: %v", *out, err)
		}
		log.Printf("wrote %s", *out)
	}

	if *datastoreName != "" {
		if err := publish(g, cfg, *datastoreName); err != nil {
			log.Fatalf("publishing to datastore: %v", err)
		}
		log.Printf("persisted %q to datastore project %q", *datastoreName, cfg.DatastoreProject)
	}
}

func readWords(path string) ([]string, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := sc.Text(); w != "" {
			words = append(words, w)
		}
	}
	return words, sc.Err()
}

func writeGraph(g *dawg.FlatGraph, path string, wide bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if wide {
		return dawg.WriteFlatGraph(f, g)
	}
	cg, err := g.ToCompact()
	if err != nil {
		return fmt.Errorf("graph is not contiguous (did Clean run?): %w", err)
	}
	return dawg.WriteCompactGraph(f, cg)
}

func publish(g *dawg.FlatGraph, cfg dawg.Config, name string) error {
	if cfg.DatastoreProject == "" {
		return fmt.Errorf("DAWG_DATASTORE_PROJECT is not set")
	}
	cg, err := g.ToCompact()
	if err != nil {
		return fmt.Errorf("graph is not contiguous (run without -wide): %w", err)
	}
	ctx := context.Background()
	client, err := datastore.NewClient(ctx, cfg.DatastoreProject)
	if err != nil {
		return err
	}
	defer client.Close()
	store := dawg.NewDatastoreStore(client, "")
	return store.Put(ctx, name, cg)
}
