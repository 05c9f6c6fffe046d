package confindent_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gennyble/confindent"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	input := "# ssh-ish client config\n" +
		"Host example.com\n" +
		"\tUser gennyble\n" +
		"\tPort 22\n" +
		"\n" +
		"Host backup.example.com\n" +
		"\t# only root may log in here\n" +
		"\tUser root\n" +
		"\tIdentityFile ~/.ssh/backup\n"

	doc, err := confindent.Parse([]byte(input))
	require.NoError(t, err)

	out, err := confindent.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, input, string(out))
}

func TestRoundTripAddsFinalNewline(t *testing.T) {
	doc, err := confindent.ParseString("A 1")
	require.NoError(t, err)
	require.Equal(t, "A 1\n", doc.String())
}

func TestKeyWithoutValue(t *testing.T) {
	doc, err := confindent.ParseString("A")
	require.NoError(t, err)

	a := doc.Child("A")
	require.NotNil(t, a)
	require.False(t, a.HasValue)
	require.Equal(t, "A\n", doc.String())

	// A trailing space after the key is not an empty value.
	doc, err = confindent.ParseString("A ")
	require.NoError(t, err)
	require.False(t, doc.Child("A").HasValue)
	require.Equal(t, "A\n", doc.String())
}

func TestDuplicateKeys(t *testing.T) {
	doc, err := confindent.ParseString("A 1\nA 2")
	require.NoError(t, err)

	kids := doc.Children("A")
	require.Len(t, kids, 2)
	require.Equal(t, "1", kids[0].Value)
	require.Equal(t, "2", kids[1].Value)
}

func TestQueryThroughFacade(t *testing.T) {
	doc, err := confindent.ParseString("User gennyble\n\tEmail gen@nyble.dev\n\tID 256")
	require.NoError(t, err)

	user := doc.Child("User")
	require.NotNil(t, user)
	require.Equal(t, "gennyble", user.Value)

	email, ok := user.ChildValue("Email")
	require.True(t, ok)
	require.Equal(t, "gen@nyble.dev", email)

	id, err := user.Child("ID").Int()
	require.NoError(t, err)
	require.Equal(t, int64(256), id)

	got, ok := doc.Get("User/Email")
	require.True(t, ok)
	require.Equal(t, "gen@nyble.dev", got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		line  int
	}{
		{"started indented", "\tA 1", confindent.ErrStartedIndented, 1},
		{"mixed indent", "A 1\n \tB 2", confindent.ErrMixedIndent, 2},
		{"tabs with spaces", "A 1\n  B 2\n\tC 3", confindent.ErrTabsWithSpaces, 3},
		{"spaces with tabs", "A 1\n\tB 2\n  C 3", confindent.ErrSpacesWithTabs, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := confindent.ParseString(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.kind)

			var perr *confindent.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := confindent.ParseString("\tA 1")
	require.EqualError(t, err, "confindent: line 1: document starts with an indented line")
}

func TestEncoder(t *testing.T) {
	doc, err := confindent.ParseString("A 1\n\tB 2")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, confindent.NewEncoder(&buf).Encode(doc))
	require.Equal(t, "A 1\n\tB 2\n", buf.String())
}

func TestNoPartialDocument(t *testing.T) {
	doc, err := confindent.ParseString("A 1\nB 2\n\t C 3\n \tD 4")
	require.Error(t, err)
	require.Nil(t, doc)
	require.True(t, errors.Is(err, confindent.ErrMixedIndent))
}
