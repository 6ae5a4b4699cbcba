package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpAndCompletionSkipDatabase(t *testing.T) {
	tests := [][]string{
		{"help"},
		{"help", "migrate"},
		{"completion", "bash"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("FAZENDA_DATABASE_URL", "fazenda.db")
			db = nil

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(args)
			require.NoError(t, rootCmd.Execute())

			assert.NotEmpty(t, out.String())
			assert.NoFileExists(t, "fazenda.db")
			assert.Nil(t, db)
		})
	}
}

func TestNeedsDatabase(t *testing.T) {
	assert.True(t, needsDatabase(migrateCmd))
	assert.True(t, needsDatabase(rootCmd))
	assert.True(t, needsDatabase(userCmd))
}
