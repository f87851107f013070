// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
)

// PlaintextPreprocessor passes text files through unchanged. It is the
// catch-all at the end of the router chain, so unrecognized extensions are
// treated as text rather than rejected.
type PlaintextPreprocessor struct{}

// NewPlaintextPreprocessor creates the plaintext preprocessor.
func NewPlaintextPreprocessor() *PlaintextPreprocessor {
	return &PlaintextPreprocessor{}
}

func (p *PlaintextPreprocessor) Name() string {
	return "plaintext"
}

func (p *PlaintextPreprocessor) CanProcess(path string) bool {
	return true
}

func (p *PlaintextPreprocessor) Process(path string) (*Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return &Document{
		Path:          path,
		Filename:      filepath.Base(path),
		Text:          string(data),
		Format:        formatOf(path),
		PageCount:     1,
		Metadata:      map[string]string{},
		ProcessorType: p.Name(),
	}, nil
}
