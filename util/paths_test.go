// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/etc", "demo.conf", "/etc/demo.conf"},
		{"/etc", "/tmp/demo.conf", "/tmp/demo.conf"},
		{"/etc/avl", "../demo.yaml", "/etc/demo.yaml"},
		{"/etc/", "./a/b/../c.yaml", "/etc/a/c.yaml"},
	}
	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.file)
		assert.Equal(t, item.expected, actual, "%d: directory: %q  file: %q", i, item.directory, item.file)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "exists.yaml")
	if err := os.WriteFile(fileName, []byte("scenarios: []\n"), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}

	assert.True(t, util.EnsureFileExists(fileName), "file not found")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "missing.yaml")), "missing file found")
	assert.False(t, util.EnsureFileExists(dir), "directory accepted as file")
}

func TestConfigurationDirectory(t *testing.T) {
	dir, err := util.ConfigurationDirectory("/etc/avl/demo.conf")
	assert.NoError(t, err, "absolute name")
	assert.Equal(t, "/etc/avl", dir, "directory")

	dir, err = util.ConfigurationDirectory("demo.conf")
	assert.NoError(t, err, "relative name")
	assert.True(t, filepath.IsAbs(dir), "not absolute: %q", dir)
}
