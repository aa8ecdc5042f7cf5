// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// OSFS is the FS of the running host.
type OSFS struct{}

func (OSFS) RealPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("unable to resolve %s: %w", path, err)
	}
	return filepath.Abs(resolved)
}

func (OSFS) ReadFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read file %s: %w", path, err)
	}
	return strings.TrimSpace(string(contents)), nil
}

// ToInt reads an integer attribute file.
func ToInt(fs FS, path string) (int, error) {
	fileString, err := fs.ReadFile(path)
	if err != nil {
		return 0, err
	}

	num, err := strconv.Atoi(fileString)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s file to int: %w", path, err)
	}
	return num, nil
}

// ToBool reads a 0/1 attribute file.
func ToBool(fs FS, path string) (bool, error) {
	num, err := ToInt(fs, path)
	if err != nil {
		return false, err
	}
	return num == 1, nil
}
