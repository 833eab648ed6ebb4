package rf2

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

const (
	activeFlag = "1"
	// maxLineSize bounds a single row; the longest RF2 terms are well below it.
	maxLineSize = 1 << 20
	// ctxCheckInterval is how many rows pass between cancellation checks.
	ctxCheckInterval = 4096
)

// Minimum column counts per file.
const (
	conceptColumns       = 5
	descriptionColumns   = 8
	relationshipColumns  = 9
	concreteValueColumns = 9
)

// readRows calls fn for every active data row of r. The header row is skipped.
func readRows(ctx context.Context, r io.Reader, file string, minCols int, fn func(cols []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++

		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if line == 1 {
			continue
		}

		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		cols := strings.Split(text, "\t")
		if len(cols) < minCols {
			return &ParseError{File: file, Line: line,
				Msg: fmt.Sprintf("expected at least %d columns, got %d", minCols, len(cols))}
		}

		if cols[2] != activeFlag {
			continue
		}

		if err := fn(cols); err != nil {
			return &ParseError{File: file, Line: line, Msg: err.Error()}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	return nil
}

// ReadConcepts reads active concepts.
func ReadConcepts(ctx context.Context, r io.Reader, file string) ([]Concept, error) {
	var out []Concept

	err := readRows(ctx, r, file, conceptColumns, func(cols []string) error {
		out = append(out, Concept{ID: cols[0], DefinitionStatus: cols[4]})
		return nil
	})

	return out, err
}

// ReadDescriptions reads active descriptions of descriptionType.
// An empty descriptionType keeps every type.
func ReadDescriptions(ctx context.Context, r io.Reader, file, descriptionType string) ([]Description, error) {
	var out []Description

	err := readRows(ctx, r, file, descriptionColumns, func(cols []string) error {
		if descriptionType != "" && cols[6] != descriptionType {
			return nil
		}

		out = append(out, Description{ID: cols[0], ConceptID: cols[4], TypeID: cols[6], Term: cols[7]})

		return nil
	})

	return out, err
}

// ReadRelationships reads active relationships, dropping excluded characteristic types.
func ReadRelationships(ctx context.Context, r io.Reader, file string, excluded []string) ([]Relationship, error) {
	var out []Relationship

	err := readRows(ctx, r, file, relationshipColumns, func(cols []string) error {
		if slices.Contains(excluded, cols[8]) {
			return nil
		}

		group, err := strconv.Atoi(cols[6])
		if err != nil {
			return fmt.Errorf("invalid relationship group %q", cols[6])
		}

		if group < 0 {
			return fmt.Errorf("negative relationship group %d", group)
		}

		out = append(out, Relationship{
			ID:                 cols[0],
			SourceID:           cols[4],
			DestinationID:      cols[5],
			Group:              group,
			TypeID:             cols[7],
			CharacteristicType: cols[8],
		})

		return nil
	})

	return out, err
}

// ReadConcreteValues reads active concrete-domain rows. The refset id of a
// row names the feature the value belongs to.
func ReadConcreteValues(ctx context.Context, r io.Reader, file string) ([]ConcreteValue, error) {
	var out []ConcreteValue

	err := readRows(ctx, r, file, concreteValueColumns, func(cols []string) error {
		if cols[8] == "" {
			return fmt.Errorf("empty value for component %s", cols[5])
		}

		out = append(out, ConcreteValue{
			RefsetID:    cols[4],
			ComponentID: cols[5],
			UnitID:      cols[6],
			OperatorID:  cols[7],
			Value:       cols[8],
		})

		return nil
	})

	return out, err
}
