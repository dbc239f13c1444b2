// Package model defines the data structures used throughout the application.
package model

// BuildMetadata contains build-time metadata about the application.
type BuildMetadata struct {
	Name        string
	Description string
	Version     string
	Revision    string
	BuildType   string
	Compiler    string
}

// Field is a single labelled value of the build metadata.
type Field struct {
	Label string
	Value string
}

// Fields returns the metadata as labelled values in report order.
func (m BuildMetadata) Fields() []Field {
	return []Field{
		{Label: "Name", Value: m.Name},
		{Label: "Description", Value: m.Description},
		{Label: "Version", Value: m.Version},
		{Label: "Revision", Value: m.Revision},
		{Label: "Build type", Value: m.BuildType},
		{Label: "Compiler", Value: m.Compiler},
	}
}
