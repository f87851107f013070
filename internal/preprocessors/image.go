// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ImagePreprocessor handles scanned form images. No OCR is performed; the
// contribution of a scanned page is its provenance metadata (scanner model,
// capture timestamp, software), rendered as labelled text lines so the rest
// of the pipeline treats it like any other document.
type ImagePreprocessor struct{}

// NewImagePreprocessor creates the image preprocessor.
func NewImagePreprocessor() *ImagePreprocessor {
	return &ImagePreprocessor{}
}

func (p *ImagePreprocessor) Name() string {
	return "image"
}

func (p *ImagePreprocessor) CanProcess(path string) bool {
	return hasExtension(path, ".jpg", ".jpeg", ".png", ".tif", ".tiff")
}

func (p *ImagePreprocessor) Process(path string) (*Document, error) {
	tags, err := extractExifTags(path)
	if err != nil {
		// Images without EXIF (most PNGs, stripped scans) still produce a
		// Document; there is just nothing to say about them.
		tags = map[string]string{}
	}

	var b strings.Builder
	b.WriteString("Scanned Document Metadata:\n")
	for _, name := range sortedTagNames(tags) {
		fmt.Fprintf(&b, "%s: %s\n", name, tags[name])
	}

	return &Document{
		Path:          path,
		Filename:      filepath.Base(path),
		Text:          b.String(),
		Format:        formatOf(path),
		PageCount:     1,
		Metadata:      tags,
		ProcessorType: p.Name(),
	}, nil
}

// exifWalker collects every EXIF tag into a flat string map.
type exifWalker struct {
	tags map[string]string
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = strings.Trim(tag.String(), `"`)
	}
	return nil
}

func extractExifTags(path string) (map[string]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("no EXIF data found: %w", err)
	}

	walker := &exifWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return nil, err
	}
	return walker.tags, nil
}

func sortedTagNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
