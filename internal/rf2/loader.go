package rf2

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// Load reads the four snapshot files in parallel and returns once all of them
// are complete. The first failure cancels the remaining reads.
func Load(ctx context.Context, src Source, opts Options) (*Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return readFile(gctx, src.Concepts, func(r io.Reader, name string) (int, error) {
			rows, err := ReadConcepts(gctx, r, name)
			snap.Concepts = rows

			return len(rows), err
		})
	})

	g.Go(func() error {
		return readFile(gctx, src.Descriptions, func(r io.Reader, name string) (int, error) {
			rows, err := ReadDescriptions(gctx, r, name, opts.DescriptionType)
			snap.Descriptions = rows

			return len(rows), err
		})
	})

	g.Go(func() error {
		return readFile(gctx, src.Relationships, func(r io.Reader, name string) (int, error) {
			rows, err := ReadRelationships(gctx, r, name, opts.ExcludedCharacteristicTypes)
			snap.Relationships = rows

			return len(rows), err
		})
	})

	g.Go(func() error {
		return readFile(gctx, src.ConcreteDomains, func(r io.Reader, name string) (int, error) {
			rows, err := ReadConcreteValues(gctx, r, name)
			snap.ConcreteValues = rows

			return len(rows), err
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	glog.Infof("loaded snapshot: %d concepts, %d descriptions, %d relationships, %d concrete values",
		len(snap.Concepts), len(snap.Descriptions), len(snap.Relationships), len(snap.ConcreteValues))

	return &snap, nil
}

// readFile opens path and hands it to read. Each goroutine in Load writes a
// distinct Snapshot field, so no locking is needed before Wait returns.
func readFile(ctx context.Context, path string, read func(r io.Reader, name string) (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	n, err := read(f, filepath.Base(path))
	if err != nil {
		return err
	}

	glog.V(1).Infof("read %d active rows from %s", n, path)

	return nil
}
