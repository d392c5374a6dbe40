package orderbook

import (
	"encoding/json"
	"fmt"
)

// JSON keys of the order creation payload
const (
	FieldSellToken = "sellToken"
	FieldBuyToken  = "buyToken"
)

// OrderCreation represents an order as provided to the POST order endpoint
type OrderCreation struct {
	// Address of token sold
	SellToken string
	// Address of token bought
	BuyToken string
	// App data keys are flattened into the order object
	AppData OrderCreationAppData
}

// orderCreationTokens is the non-flattened part of the wire form
type orderCreationTokens struct {
	SellToken string `json:"sellToken"`
	BuyToken  string `json:"buyToken"`
}

// orderCreationWire is the full wire form with the app data keys inlined
type orderCreationWire struct {
	orderCreationTokens
	appDataFields
}

// MarshalJSON encodes the order with its app data keys flattened
func (o OrderCreation) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderCreationWire{
		orderCreationTokens: orderCreationTokens{SellToken: o.SellToken, BuyToken: o.BuyToken},
		appDataFields:       o.AppData.fields(),
	})
}

// UnmarshalJSON decodes an order, ignoring unknown keys.
// Use DecodeOrderCreation with WithStrictFields to reject them.
func (o *OrderCreation) UnmarshalJSON(data []byte) error {
	decoded, err := decodeOrderCreation(data, decodeOptions{})
	if err != nil {
		return err
	}
	*o = decoded
	return nil
}

// DecodeOption configures DecodeOrderCreation
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	strict bool
}

// WithStrictFields rejects keys outside the order creation shape
func WithStrictFields() DecodeOption {
	return func(o *decodeOptions) {
		o.strict = true
	}
}

// DecodeOrderCreation decodes one order creation request payload
func DecodeOrderCreation(data []byte, opts ...DecodeOption) (OrderCreation, error) {
	var options decodeOptions
	for _, opt := range opts {
		opt(&options)
	}
	return decodeOrderCreation(data, options)
}

func decodeOrderCreation(data []byte, options decodeOptions) (OrderCreation, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return OrderCreation{}, err
	}

	if options.strict {
		for key := range fields {
			switch key {
			case FieldSellToken, FieldBuyToken, FieldAppData, FieldAppDataHash:
			default:
				return OrderCreation{}, malformed("unknown field %q", key)
			}
		}
	}

	sellToken, err := requiredString(fields, FieldSellToken)
	if err != nil {
		return OrderCreation{}, err
	}
	buyToken, err := requiredString(fields, FieldBuyToken)
	if err != nil {
		return OrderCreation{}, err
	}

	appData, err := ResolveAppData(fields)
	if err != nil {
		return OrderCreation{}, err
	}

	return OrderCreation{
		SellToken: sellToken,
		BuyToken:  buyToken,
		AppData:   appData,
	}, nil
}

func requiredString(fields map[string]json.RawMessage, key string) (string, error) {
	s, ok, err := stringField(fields, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", malformed("missing field %q", key)
	}
	return s, nil
}

func (o OrderCreation) String() string {
	return fmt.Sprintf("OrderCreation{sellToken: %s, buyToken: %s, appData: %s}", o.SellToken, o.BuyToken, o.AppData)
}
