package orderbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/kaifufi/orderbook-appdata-go/chain"
	"gopkg.in/yaml.v3"
)

// Component schema names
const (
	SchemaOrderCreation = "OrderCreation"
	SchemaAppDataHash   = "AppDataHash"
)

const (
	addressPattern     = "^0x[0-9a-fA-F]{40}$"
	appDataHashPattern = "^0x[0-9a-fA-F]{64}$"
)

// OpenAPIDocument builds the schema document describing OrderCreation
func OpenAPIDocument(cfg SchemaConfig) *openapi3.T {
	cfg = cfg.withDefaults()

	appDataHash := appDataHashSchema()

	return &openapi3.T{
		OpenAPI: cfg.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       cfg.Title,
			Version:     cfg.Version,
			Description: cfg.Description,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				SchemaOrderCreation: openapi3.NewSchemaRef("", orderCreationSchema(appDataHash)),
				SchemaAppDataHash:   openapi3.NewSchemaRef("", appDataHash),
			},
		},
	}
}

func orderCreationSchema(appDataHash *openapi3.Schema) *openapi3.Schema {
	return &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeObject},
		Description: "An order as provided to the POST order endpoint.",
		Required:    []string{FieldSellToken, FieldBuyToken},
		Properties: openapi3.Schemas{
			FieldSellToken: openapi3.NewSchemaRef("", addressSchema("Address of token sold.")),
			FieldBuyToken:  openapi3.NewSchemaRef("", addressSchema("Address of token bought.")),
			FieldAppData: openapi3.NewSchemaRef("", &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeString},
				Description: "The string encoding of a JSON object representing some `appData`. " +
					"When sent without `appDataHash` the hash is derived from it. " +
					"Legacy clients send the app data hash itself in this field, as in the example.",
				Example: ExampleAppData,
			}),
			// Ref carries its value so the document validates without a loader
			FieldAppDataHash: openapi3.NewSchemaRef("#/components/schemas/"+SchemaAppDataHash, appDataHash),
		},
	}
}

func addressSchema(description string) *openapi3.Schema {
	return &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeString},
		Description: description,
		Pattern:     addressPattern,
		Example:     ExampleTokenAddress,
	}
}

func appDataHashSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeString},
		Description: "32 bytes encoded as hex with `0x` prefix. " +
			"If `appData` is also set it must hash to this value, otherwise it is taken as the final app data hash.",
		Pattern: appDataHashPattern,
		Example: chain.EmptyAppDataHash.Hex(),
	}
}

// WriteSchema renders doc to w in the given format
func WriteSchema(w io.Writer, doc *openapi3.T, format OutputFormat) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal schema document: %w", err)
	}

	switch format {
	case OutputFormatJSON:
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return fmt.Errorf("failed to indent schema document: %w", err)
		}
		out.WriteByte('\n')
		_, err := out.WriteTo(w)
		return err
	case OutputFormatYAML, "":
		// JSON is valid YAML; decode into nodes to keep key order, then drop the flow styles
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("failed to convert schema document to yaml: %w", err)
		}
		resetStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("failed to encode schema document: %w", err)
		}
		return enc.Close()
	default:
		return &InvalidParamError{Message: fmt.Sprintf("unsupported format: %s", format)}
	}
}

func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
