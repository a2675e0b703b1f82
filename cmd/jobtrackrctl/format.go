package main

//go:generate go run github.com/dmarkham/enumer -type Format -trimprefix Format -transform lower -text -output format.gen.go

// Format is the output format for the export command
type Format int

const (
	FormatJSON Format = iota
	FormatMarkdown
	FormatHTML
)
