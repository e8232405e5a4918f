package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndNormalizeWallet(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain", in: "WALLET_A", want: "WALLET_A"},
		{name: "surrounding spaces", in: "  WALLET_A\t", want: "WALLET_A"},
		{name: "backticks", in: "`7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU`", want: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"},
		{name: "empty", in: "", wantErr: ErrEmptyWallet},
		{name: "blank", in: "   ", wantErr: ErrEmptyWallet},
		{name: "only backticks", in: "``", wantErr: ErrEmptyWallet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndNormalizeWallet(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSymbol(t *testing.T) {
	s, err := NormalizeSymbol(" $jup ")
	require.NoError(t, err)
	assert.Equal(t, "JUP", s)

	_, err = NormalizeSymbol("$")
	assert.ErrorIs(t, err, ErrEmptySymbol)
}
