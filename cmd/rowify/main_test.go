package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeta(t *testing.T) {
	meta, err := parseMeta([]string{"state=CT", "source=feed"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"state": "CT", "source": "feed"}, meta)

	meta, err = parseMeta(nil)
	require.NoError(t, err)
	assert.Nil(t, meta)

	_, err = parseMeta([]string{"noequals"})
	assert.Error(t, err)

	_, err = parseMeta([]string{"=value"})
	assert.Error(t, err)
}

func TestRunStdinToCSV(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("rank,name,city\n1,Ada,Rome\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"-o", "csv"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "rank,name,city,id\n1,Ada,Rome,ada-1\n", out.String())
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"-o", "bogus"})

	err := rootCmd.Execute()
	assert.Error(t, err)
}
