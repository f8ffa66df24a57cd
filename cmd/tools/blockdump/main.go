package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/annel0/pheonix/internal/app"
	"github.com/annel0/pheonix/internal/logging"
	"github.com/annel0/pheonix/internal/world/block"
	"gopkg.in/yaml.v3"
)

type entry struct {
	NumericID   uint16 `yaml:"numeric_id"`
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Category    string `yaml:"category"`
}

type dump struct {
	Digest string  `yaml:"digest"`
	Blocks []entry `yaml:"blocks"`
}

func main() {
	var (
		format   = flag.String("format", "text", "Формат вывода: text, yaml")
		category = flag.String("category", "", "Только указанная категория (solid, liquid, gas, transparent)")
		verbose  = flag.Bool("v", false, "Подробный лог регистрации в stderr")
	)
	flag.Parse()

	level := logging.WARN
	if *verbose {
		level = logging.DEBUG
	}
	logger := logging.NewWriter("blockdump", os.Stderr, level)

	registry := block.NewRegistry(block.WithLogger(logger))
	if err := app.RegisterBuiltins(registry, logger); err != nil {
		log.Fatalf("❌ %v", err)
	}

	d, err := collect(registry, *category)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	switch *format {
	case "text":
		err = writeText(os.Stdout, d)
	case "yaml":
		err = yaml.NewEncoder(os.Stdout).Encode(d)
	default:
		err = fmt.Errorf("неизвестный формат %q", *format)
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func collect(registry *block.Registry, category string) (dump, error) {
	d := dump{Digest: registry.Digest()}

	filter := false
	var want block.Category
	if category != "" {
		c, err := block.ParseCategory(category)
		if err != nil {
			return d, err
		}
		filter, want = true, c
	}

	registry.Range(func(n uint16, bt block.BlockType) bool {
		if filter && bt.Category() != want {
			return true
		}
		d.Blocks = append(d.Blocks, entry{
			NumericID:   n,
			ID:          bt.ID(),
			DisplayName: bt.DisplayName(),
			Category:    bt.Category().String(),
		})
		return true
	})
	return d, nil
}

func writeText(w io.Writer, d dump) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUM\tID\tNAME\tCATEGORY")
	for _, e := range d.Blocks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.NumericID, e.ID, e.DisplayName, e.Category)
	}
	fmt.Fprintf(tw, "\ndigest: %s\n", d.Digest)
	return tw.Flush()
}
