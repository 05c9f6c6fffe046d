package confindent_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gennyble/confindent"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden round-trips every testdata config. For valid files the golden
// file is the serialized document, which must be byte-identical to the
// source. For files that are expected to fail, the golden file holds the
// error message.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.conf")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			doc, perr := confindent.Parse(src)
			if perr != nil {
				actual = []byte(perr.Error())
			} else {
				actual, err = confindent.Marshal(doc)
				require.NoError(t, err)
				require.Equal(t, string(src), string(actual),
					"serialization must reproduce the source exactly")
			}

			goldenFile := strings.Replace(file, ".conf", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "golden file not found, run with -update to create it")

			require.Equal(t, string(expected), string(actual))
		})
	}
}
