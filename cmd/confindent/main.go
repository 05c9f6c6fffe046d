// Command confindent reads, checks, queries, and converts
// indentation-delimited configuration files.
package main

func main() {
	Execute()
}
