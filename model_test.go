package orderbook

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSellToken = "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	testBuyToken  = "0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
)

func TestDecodeOrderCreation(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected OrderCreationAppData
	}{
		{
			name:     "both",
			input:    `{"sellToken":"0xAA..","buyToken":"0xBB..","appData":"{\"x\":1}","appDataHash":"0x123"}`,
			expected: NewAppDataBoth(`{"x":1}`, "0x123"),
		},
		{
			name:     "full only",
			input:    `{"sellToken":"0xAA..","buyToken":"0xBB..","appData":"{\"x\":1}"}`,
			expected: NewAppDataFull(`{"x":1}`),
		},
		{
			name:     "hash only",
			input:    `{"sellToken":"0xAA..","buyToken":"0xBB..","appDataHash":"0x123"}`,
			expected: NewAppDataHash("0x123"),
		},
		{
			name:     "no app data",
			input:    `{"sellToken":"0xAA..","buyToken":"0xBB.."}`,
			expected: NewAppDataHash(""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := DecodeOrderCreation([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, "0xAA..", order.SellToken)
			assert.Equal(t, "0xBB..", order.BuyToken)
			assert.Equal(t, tc.expected, order.AppData)

			// json.Unmarshal goes through the same path
			var viaUnmarshal OrderCreation
			require.NoError(t, json.Unmarshal([]byte(tc.input), &viaUnmarshal))
			assert.Equal(t, order, viaUnmarshal)
		})
	}
}

func TestDecodeOrderCreationUnknownFields(t *testing.T) {
	input := []byte(`{"sellToken":"0xAA","buyToken":"0xBB","appData":"{}","kind":"sell"}`)

	order, err := DecodeOrderCreation(input)
	require.NoError(t, err)
	assert.Equal(t, NewAppDataFull("{}"), order.AppData)

	_, err = DecodeOrderCreation(input, WithStrictFields())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedAppData))
	assert.Contains(t, err.Error(), `"kind"`)

	_, err = DecodeOrderCreation([]byte(`{"sellToken":"0xAA","buyToken":"0xBB","appDataHash":"0x1"}`), WithStrictFields())
	assert.NoError(t, err)
}

func TestDecodeOrderCreationMalformed(t *testing.T) {
	for _, input := range []string{
		``,
		`null`,
		`[]`,
		`"order"`,
		`{"buyToken":"0xBB"}`,
		`{"sellToken":"0xAA"}`,
		`{"sellToken":1,"buyToken":"0xBB"}`,
		`{"sellToken":"0xAA","buyToken":"0xBB","appData":42}`,
		`{"sellToken":"0xAA",`,
	} {
		_, err := DecodeOrderCreation([]byte(input))
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrMalformedAppData), input)
	}
}

func TestOrderCreationRoundTrip(t *testing.T) {
	for _, appData := range []OrderCreationAppData{
		NewAppDataBoth(`{"x":1}`, "0x123"),
		NewAppDataFull(`{"x":1}`),
		NewAppDataHash("0x123"),
		DefaultAppData(),
	} {
		order := OrderCreation{SellToken: testSellToken, BuyToken: testBuyToken, AppData: appData}

		data, err := json.Marshal(order)
		require.NoError(t, err)

		decoded, err := DecodeOrderCreation(data, WithStrictFields())
		require.NoError(t, err)
		assert.Equal(t, order, decoded)
	}
}

func TestOrderCreationMarshalJSONFlattened(t *testing.T) {
	order := OrderCreation{
		SellToken: testSellToken,
		BuyToken:  testBuyToken,
		AppData:   NewAppDataBoth("{}", "0x1"),
	}
	data, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sellToken": "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		"buyToken": "0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB",
		"appData": "{}",
		"appDataHash": "0x1"
	}`, string(data))

	data, err = json.Marshal(OrderCreation{SellToken: testSellToken, BuyToken: testBuyToken})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sellToken": "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		"buyToken": "0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
	}`, string(data))
}
