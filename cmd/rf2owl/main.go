// Package main provides the CLI entrypoint for rf2owl.
//
// rf2owl converts an RF2 snapshot (concepts, descriptions, relationships and
// concrete-domain values) into a description-logic ontology written as KRSS,
// OWL RDF/XML or OWL functional-style syntax.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"

	"rf2owl/internal/config"
	"rf2owl/internal/diagnostic"
	"rf2owl/internal/ontology"
	"rf2owl/internal/render"
	"rf2owl/internal/rf2"
)

// Exit codes.
const (
	exitOK         = 0
	exitFatal      = 1
	exitStructural = 2
)

type options struct {
	mode       string
	source     rf2.Source
	output     string
	configPath string
	dump       bool
}

func main() {
	code := runWithArgs(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	glog.Flush()
	os.Exit(code)
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}

		return exitFatal
	}

	model, err := run(ctx, opts, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFatal
	}

	if err := model.Diagnostics.Error(); err != nil {
		fmt.Fprintf(stderr, "output written with %v\n", err)
		return exitStructural
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("rf2owl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// glog registers -v, -logtostderr and friends on the global set.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, f.Name, f.Usage)
	})

	opts := &options{}
	fs.StringVar(&opts.mode, "mode", render.ModeFunctional, "output syntax: "+strings.Join(render.Modes(), ", "))
	fs.StringVar(&opts.source.Concepts, "concepts", "", "RF2 concept snapshot file")
	fs.StringVar(&opts.source.Descriptions, "descriptions", "", "RF2 description snapshot file")
	fs.StringVar(&opts.source.Relationships, "relationships", "", "RF2 relationship snapshot file")
	fs.StringVar(&opts.source.ConcreteDomains, "concretedomains", "", "RF2 concrete-domain refset snapshot file")
	fs.StringVar(&opts.output, "o", render.Stdout, "output file, - for stdout")
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&opts.dump, "dump", false, "dump the assembled definitions to stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rf2owl -mode MODE -concepts F -descriptions F -relationships F -concretedomains F [-o OUT]\n\n")
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var missing []error

	required := []struct{ name, path string }{
		{"concepts", opts.source.Concepts},
		{"descriptions", opts.source.Descriptions},
		{"relationships", opts.source.Relationships},
		{"concretedomains", opts.source.ConcreteDomains},
	}

	for _, r := range required {
		if r.path == "" {
			missing = append(missing, fmt.Errorf("-%s is required", r.name))
		}
	}

	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	return opts, nil
}

// run executes the pipeline. The output is written even when the model has
// structural errors; the caller decides the exit status from its diagnostics.
func run(ctx context.Context, opts *options, stdout, stderr io.Writer) (*ontology.Model, error) {
	serializer, err := render.New(opts.mode)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	snap, err := rf2.Load(ctx, opts.source, rf2.Options{
		DescriptionType:             cfg.Vocabulary.FullySpecifiedName,
		ExcludedCharacteristicTypes: cfg.Input.ExcludedCharacteristicTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if msg := cfg.MarkerWarning(len(snap.ConcreteValues)); msg != "" {
		glog.Warning(msg)
		fmt.Fprintf(stderr, "warning: %s\n", msg)
	}

	builder := ontology.NewBuilder(cfg.OntologyVocabulary())
	if err := builder.Ingest(snap); err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}

	model, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}

	reportDiagnostics(model, stderr)

	if opts.dump {
		spew.Fdump(stderr, model.Definitions)
	}

	header := render.NewHeader(cfg.Ontology.IRI, cfg.Ontology.EntityIRI, cfg.Ontology.Version,
		filepath.Base(opts.source.Concepts), filepath.Base(opts.source.Relationships))

	data, err := render.RenderBytes(serializer, model, header)
	if err != nil {
		return nil, err
	}

	if err := render.WriteFile(opts.output, data, stdout); err != nil {
		return nil, err
	}

	glog.Infof("wrote %s output (%d bytes) to %s", serializer.Name(), len(data), opts.output)

	return model, nil
}

// reportDiagnostics prints the non-fatal findings. Structural errors are
// reported by the caller once the output is written.
func reportDiagnostics(model *ontology.Model, stderr io.Writer) {
	if features := model.Diagnostics.Subjects(diagnostic.CodeUnknownDatatype); len(features) > 0 {
		fmt.Fprintf(stderr, "warning: %d feature(s) without a datatype: %s\n", len(features), strings.Join(features, ", "))
	}

	if implicit := model.Diagnostics.ByCode(diagnostic.CodeImplicitConcept); len(implicit) > 0 {
		glog.Infof("declared %d referenced concept(s) missing from the concept file", len(implicit))
	}
}
