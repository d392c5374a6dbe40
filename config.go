package orderbook

// OutputFormat selects how the schema document is rendered
type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

// SupportedOutputFormats lists all supported output formats
var SupportedOutputFormats = []OutputFormat{OutputFormatYAML, OutputFormatJSON}

const (
	DefaultOpenAPIVersion = "3.0.3"
	DefaultSchemaTitle    = "orderbook"
	DefaultSchemaVersion  = "0.1.0"

	// ExampleTokenAddress is used as the example value of token address fields
	ExampleTokenAddress = "0x6810e776880c02933d47db1b9fc05908e5386b96"
	// ExampleAppData is used as the example value of the appData field
	ExampleAppData = "0x000000"
)

// SchemaConfig holds configuration for building the schema document
type SchemaConfig struct {
	OpenAPIVersion string
	Title          string
	Version        string
	Description    string
	Format         OutputFormat
}

// DefaultSchemaConfig returns a SchemaConfig with all defaults set
func DefaultSchemaConfig() SchemaConfig {
	return SchemaConfig{}.withDefaults()
}

func (c SchemaConfig) withDefaults() SchemaConfig {
	if c.OpenAPIVersion == "" {
		c.OpenAPIVersion = DefaultOpenAPIVersion
	}
	if c.Title == "" {
		c.Title = DefaultSchemaTitle
	}
	if c.Version == "" {
		c.Version = DefaultSchemaVersion
	}
	if c.Format == "" {
		c.Format = OutputFormatYAML
	}
	return c
}

// ParseOutputFormat validates s against SupportedOutputFormats
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range SupportedOutputFormats {
		if OutputFormat(s) == f {
			return f, nil
		}
	}
	return "", &InvalidParamError{Message: "format must be one of yaml, json, got: " + s}
}
