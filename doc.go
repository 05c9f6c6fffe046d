/*
Package confindent parses and serializes an indentation-delimited key/value
configuration format, the kind of nesting an SSH client config uses.

# The Format

Every line holds a key and, after the first space, an optional value. A line
is made a child of the line above it by indenting it with tabs or spaces.
Indent the same amount to add a sibling, more to add a grandchild. An
indentation run must not mix tabs and spaces, and a block started with one
style must keep it.

	Host example.com
		User gennyble
		Port 22
	# comments and blank lines survive a round-trip
	Host backup.example.com
		User root

# Parsing and Querying

Parse returns a full-fidelity document that keeps comments, blank lines, and
the exact indentation of every node:

	doc, err := confindent.Parse(data)
	if err != nil {
		// handle error
	}

	host := doc.Child("Host")
	user, ok := host.ChildValue("User")
	port, err := host.Child("Port").Int()

Key lookups see only logical nodes; comments and blank lines are kept solely
so that serialization reproduces the source text byte for byte:

	out, _ := confindent.Marshal(doc) // identical to data

Keys are not unique. Children returns every direct child with a key, in the
order they appeared. Get walks a slash-delimited path of keys:

	user, ok := doc.Get("Host/User")

# Building Documents

Documents can also be built programmatically and serialized:

	doc := &ast.Document{}
	host := doc.CreateChild("Host", "example.net")
	host.CreateChild("Username", "gerald")
	err := confindent.Save(doc, "example.conf")

# Errors

All parse failures abort the parse and report the offending line. The kinds
(ErrStartedIndented, ErrMixedIndent, ErrTabsWithSpaces, ErrSpacesWithTabs)
are matched with errors.Is, and the line number is available through
errors.As on *ParseError.
*/
package confindent
