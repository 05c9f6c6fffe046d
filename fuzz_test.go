package confindent_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gennyble/confindent"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	seedFiles, err := filepath.Glob("testdata/*.conf")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("Key Value\n"))
	f.Add([]byte("A 1\n\tB 2\n\t\tC 3\n"))
	f.Add([]byte("# comment\n\nKey\n"))
	f.Add([]byte("  \t"))

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := confindent.Parse(data)
		if err != nil {
			// Invalid input is expected; the fuzzer is hunting panics.
			return
		}

		// Serializing a document our own parser produced must never fail,
		// and the output must parse back to the same text.
		out, err := confindent.Marshal(doc)
		require.NoError(t, err, "Marshal failed for a successfully parsed document")

		doc2, err := confindent.Parse(out)
		require.NoError(t, err, "Parse failed on our own serialized output")

		out2, err := confindent.Marshal(doc2)
		require.NoError(t, err)
		require.Equal(t, string(out), string(out2), "serialization is not stable across a reparse")
	})
}
