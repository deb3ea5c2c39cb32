package facades

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChain answers the node calls a legacy-fee transaction needs.
type fakeChain struct {
	ChainBackend

	headerErr     error
	receiptStatus uint64
	balance       *big.Int
	sent          []*types.Transaction
}

func (c *fakeChain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if c.headerErr != nil {
		return nil, c.headerErr
	}
	return &types.Header{Number: big.NewInt(100)}, nil
}

func (c *fakeChain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *fakeChain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *fakeChain) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (c *fakeChain) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (c *fakeChain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return uint64(len(c.sent)), nil
}

func (c *fakeChain) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 60_000, nil
}

func (c *fakeChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	c.sent = append(c.sent, tx)
	return nil
}

func (c *fakeChain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: c.receiptStatus, TxHash: txHash, BlockNumber: big.NewInt(101)}, nil
}

func (c *fakeChain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return common.LeftPadBytes(c.balance.Bytes(), 32), nil
}

const (
	testToken   = "0x4D423D2cfB373862B8E12843B6175752dc75f795"
	testSpender = "0x1111111111111111111111111111111111111111"
)

func TestERC20Facade_Approve(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey).Hex()

	tests := []struct {
		name      string
		chain     *fakeChain
		key       bool
		owner     string
		spender   string
		amount    *big.Int
		wantErr   bool
		wantSent  int
		wantBlock uint64
	}{
		{
			name:      "mined and successful",
			chain:     &fakeChain{receiptStatus: types.ReceiptStatusSuccessful},
			key:       true,
			owner:     owner,
			spender:   testSpender,
			amount:    big.NewInt(1_000_000),
			wantSent:  1,
			wantBlock: 101,
		},
		{
			name:     "reverted",
			chain:    &fakeChain{receiptStatus: types.ReceiptStatusFailed},
			key:      true,
			owner:    owner,
			spender:  testSpender,
			amount:   big.NewInt(1_000_000),
			wantErr:  true,
			wantSent: 1,
		},
		{
			name:    "chain unavailable",
			chain:   &fakeChain{headerErr: errors.New("connection refused")},
			key:     true,
			owner:   owner,
			spender: testSpender,
			amount:  big.NewInt(1),
			wantErr: true,
		},
		{
			name:    "signer is not the owner",
			chain:   &fakeChain{},
			key:     true,
			owner:   testSpender,
			spender: testSpender,
			amount:  big.NewInt(1),
			wantErr: true,
		},
		{
			name:    "no signing key",
			chain:   &fakeChain{},
			owner:   owner,
			spender: testSpender,
			amount:  big.NewInt(1),
			wantErr: true,
		},
		{
			name:    "invalid spender",
			chain:   &fakeChain{},
			key:     true,
			owner:   owner,
			spender: "not-an-address",
			amount:  big.NewInt(1),
			wantErr: true,
		},
		{
			name:    "zero amount",
			chain:   &fakeChain{},
			key:     true,
			owner:   owner,
			spender: testSpender,
			amount:  big.NewInt(0),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var signer = key
			if !tt.key {
				signer = nil
			}
			f, err := NewERC20Facade(tt.chain, signer, big.NewInt(84532), 5*time.Second)
			require.NoError(t, err)

			receipt, err := f.Approve(context.Background(), tt.owner, testToken, tt.spender, tt.amount)

			assert.Len(t, tt.chain.sent, tt.wantSent)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrApprovalFailed)
				assert.Nil(t, receipt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chain.sent[0].Hash().Hex(), receipt.TransactionHash)
			assert.Equal(t, tt.wantBlock, receipt.ConfirmedBlock)
		})
	}
}

func TestERC20Facade_Transfer(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey).Hex()

	chain := &fakeChain{receiptStatus: types.ReceiptStatusSuccessful}
	f, err := NewERC20Facade(chain, key, big.NewInt(84532), 5*time.Second)
	require.NoError(t, err)

	receipt, err := f.Transfer(context.Background(), owner, testToken, testSpender, big.NewInt(5))
	require.NoError(t, err)
	require.Len(t, chain.sent, 1)
	assert.Equal(t, common.HexToAddress(testToken), *chain.sent[0].To())
	assert.NotEmpty(t, receipt.TransactionHash)
}

func TestERC20Facade_BalanceOf(t *testing.T) {
	chain := &fakeChain{balance: big.NewInt(4200)}
	f, err := NewERC20Facade(chain, nil, big.NewInt(84532), time.Second)
	require.NoError(t, err)

	bal, err := f.BalanceOf(context.Background(), testToken, testSpender)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), bal.Int64())

	allowance, err := f.Allowance(context.Background(), testToken, testSpender, testSpender)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), allowance.Int64())

	_, err = f.BalanceOf(context.Background(), "bad", testSpender)
	assert.ErrorIs(t, err, models.ErrApprovalFailed)
}

func TestParsePrivateKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexKey := "0x" + common.Bytes2Hex(crypto.FromECDSA(key))

	parsed, err := ParsePrivateKey(hexKey)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(parsed.PublicKey))

	_, err = ParsePrivateKey("zz")
	assert.Error(t, err)
}
