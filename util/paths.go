// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if a regular file exists
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}

// ConfigurationDirectory - absolute directory holding a configuration
// file, relative names in the configuration are resolved against it
func ConfigurationDirectory(fileName string) (string, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return "", err
	}
	return filepath.Dir(fileName), nil
}
