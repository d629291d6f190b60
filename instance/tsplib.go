// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TSPLIB header keys understood by Parse.
const (
	keyName       = "NAME"
	keyType       = "TYPE"
	keyComment    = "COMMENT"
	keyDimension  = "DIMENSION"
	keyWeightType = "EDGE_WEIGHT_TYPE"
	keyWeightFmt  = "EDGE_WEIGHT_FORMAT"
	keySection    = "EDGE_WEIGHT_SECTION"
	keyEOF        = "EOF"

	formatFullMatrix = "FULL_MATRIX"
	typeExplicit     = "EXPLICIT"
)

// Load opens path and parses it as a TSPLIB instance.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", path, err)
	}

	return in, nil
}

// Parse reads a TSPLIB instance with an explicit full distance matrix.
//
// Stages:
//  1. Header: "KEY: value" or "KEY : value" lines until EDGE_WEIGHT_SECTION.
//     DIMENSION is required; EDGE_WEIGHT_TYPE must be EXPLICIT and
//     EDGE_WEIGHT_FORMAT must be FULL_MATRIX when present.
//  2. Body: n*n whitespace-separated numbers in row-major order, possibly
//     spread over any number of lines. A trailing EOF marker is tolerated.
//
// Diagonal entries are read and discarded. DIMENSION above MaxDimension is
// rejected with ErrTooLarge before any weight is read.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		name, comment string
		n             = -1
		inSection     bool
	)

	// Stage 1: header.
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, value := splitHeader(line)
		switch key {
		case keySection:
			inSection = true
		case keyName:
			name = value
		case keyComment:
			comment = value
		case keyType:
			// ATSP and TSP both carry explicit matrices in this format.
		case keyDimension:
			d, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMissingDimension, value)
			}
			n = d
		case keyWeightType:
			if value != typeExplicit {
				return nil, fmt.Errorf("%w: %s %s", ErrUnsupportedFormat, keyWeightType, value)
			}
		case keyWeightFmt:
			if value != formatFullMatrix {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, value)
			}
		}
		if inSection {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !inSection {
		return nil, ErrMissingSection
	}
	if n < 0 {
		return nil, ErrMissingDimension
	}
	if n < 2 {
		return nil, ErrTooSmall
	}
	if n > MaxDimension {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxDimension)
	}

	// Stage 2: body, read line by line and token by token. The buffer grows
	// with the weights actually present; rows are cut only once all n*n arrived.
	total := n * n
	weights := make([]float64, 0, min(total, 4096))
body:
	for len(weights) < total && sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			if tok == keyEOF || len(weights) == total {
				break body
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("instance: weight %d: %w", len(weights), err)
			}
			weights = append(weights, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(weights) < total {
		return nil, fmt.Errorf("%w: read %d of %d weights", ErrTruncated, len(weights), total)
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = weights[i*n : (i+1)*n : (i+1)*n]
		dist[i][i] = 0
	}

	in, err := New(dist)
	if err != nil {
		return nil, err
	}
	in.Name = name
	in.Comment = comment

	return in, nil
}

// splitHeader splits "KEY: value", "KEY : value" and bare "KEY" lines.
func splitHeader(line string) (key, value string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return strings.TrimSpace(line), ""
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}
