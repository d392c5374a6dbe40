package orderbook

import (
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kaifufi/orderbook-appdata-go/chain"
)

// ValidatedAppData is app data whose hash is final
type ValidatedAppData struct {
	Hash common.Hash
	// Full is nil for hash-only app data
	Full *string
}

// Validate computes the final app data hash.
//
// Both: the full app data must hash to the expected value.
// FullOnly: the hash is derived from the full app data.
// HashOnly: the hash is taken as is, without any payload validation.
func (a OrderCreationAppData) Validate() (ValidatedAppData, error) {
	switch a.kind {
	case AppDataBoth:
		if err := checkFullAppData(a.full); err != nil {
			return ValidatedAppData{}, err
		}
		actual := chain.HashAppData(a.full)
		expected, err := chain.ParseAppDataHash(a.expected)
		if err != nil {
			// an unparsable declared hash can never equal the recomputed one
			return ValidatedAppData{}, &HashMismatchError{Expected: a.expected, Actual: actual.Hex(), Err: err}
		}
		if actual != expected {
			return ValidatedAppData{}, &HashMismatchError{Expected: a.expected, Actual: actual.Hex()}
		}
		full := a.full
		return ValidatedAppData{Hash: actual, Full: &full}, nil
	case AppDataFullOnly:
		if err := checkFullAppData(a.full); err != nil {
			return ValidatedAppData{}, err
		}
		full := a.full
		return ValidatedAppData{Hash: chain.HashAppData(a.full), Full: &full}, nil
	default:
		hash, err := chain.ParseAppDataHash(a.hash)
		if err != nil {
			return ValidatedAppData{}, fmt.Errorf("%w: %s: %w", ErrInvalidParam, FieldAppData, err)
		}
		return ValidatedAppData{Hash: hash}, nil
	}
}

// full app data is the string encoding of a JSON object
func checkFullAppData(full string) error {
	if _, err := decodeObject([]byte(full)); err != nil {
		return fmt.Errorf("%s: %w", FieldAppData, err)
	}
	return nil
}

// ValidatedOrder is an order with checksummed token addresses and a final app data hash
type ValidatedOrder struct {
	SellToken common.Address
	BuyToken  common.Address
	AppData   ValidatedAppData
}

// OrderValidator checks order creation payloads before they are handed to order processing
type OrderValidator struct {
	logger *slog.Logger
}

// NewOrderValidator returns a new OrderValidator
func NewOrderValidator(logger *slog.Logger) *OrderValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderValidator{logger: logger}
}

// Validate checks the token addresses and the app data of order
func (v *OrderValidator) Validate(order OrderCreation) (*ValidatedOrder, error) {
	sellToken, err := chain.ParseAddress(order.SellToken)
	if err != nil {
		return nil, &InvalidParamError{Message: fmt.Sprintf("sellToken: %v", err)}
	}
	buyToken, err := chain.ParseAddress(order.BuyToken)
	if err != nil {
		return nil, &InvalidParamError{Message: fmt.Sprintf("buyToken: %v", err)}
	}
	if sellToken == buyToken {
		return nil, &InvalidParamError{Message: "sellToken and buyToken must differ"}
	}

	appData, err := order.AppData.Validate()
	if err != nil {
		v.logger.Debug(
			"rejected order app data",
			"kind", order.AppData.Kind().String(),
			"error", err,
		)
		return nil, err
	}

	v.logger.Debug(
		"validated order",
		"sellToken", sellToken.Hex(),
		"buyToken", buyToken.Hex(),
		"appDataKind", order.AppData.Kind().String(),
		"appDataHash", appData.Hash.Hex(),
	)

	return &ValidatedOrder{
		SellToken: sellToken,
		BuyToken:  buyToken,
		AppData:   appData,
	}, nil
}
