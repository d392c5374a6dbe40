// Example usage of the order creation app data decoding and validation
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	orderbook "github.com/kaifufi/orderbook-appdata-go"
	"github.com/kaifufi/orderbook-appdata-go/chain"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	validator := orderbook.NewOrderValidator(logger)

	fullAppData := `{"version":"1.1.0","metadata":{}}`
	payloads := []string{
		// Full app data with the hash it must produce
		fmt.Sprintf(`{"sellToken":%q,"buyToken":%q,"appData":%q,"appDataHash":%q}`,
			orderbook.ExampleTokenAddress, buyToken, fullAppData, chain.HashAppData(fullAppData).Hex()),
		// Full app data only
		fmt.Sprintf(`{"sellToken":%q,"buyToken":%q,"appData":%q}`,
			orderbook.ExampleTokenAddress, buyToken, fullAppData),
		// Legacy hash only
		fmt.Sprintf(`{"sellToken":%q,"buyToken":%q,"appDataHash":%q}`,
			orderbook.ExampleTokenAddress, buyToken, chain.EmptyAppDataHash.Hex()),
		// Declared hash does not match
		fmt.Sprintf(`{"sellToken":%q,"buyToken":%q,"appData":%q,"appDataHash":%q}`,
			orderbook.ExampleTokenAddress, buyToken, fullAppData, chain.EmptyAppDataHash.Hex()),
	}

	for _, payload := range payloads {
		order, err := orderbook.DecodeOrderCreation([]byte(payload), orderbook.WithStrictFields())
		if err != nil {
			log.Fatalf("Failed to decode order: %v", err)
		}
		fmt.Printf("Decoded: %s\n", order)

		validated, err := validator.Validate(order)
		if errors.Is(err, orderbook.ErrHashMismatch) {
			fmt.Printf("Rejected: %v\n", err)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to validate order: %v", err)
		}
		fmt.Printf("App data hash: %s\n", validated.AppData.Hash.Hex())
	}
}

const buyToken = "0xdac17f958d2ee523a2206206994597c13d831ec7"
