package facades

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/metrics"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

const erc20ABI = `[
	{
		"constant": false,
		"inputs": [
			{"name": "_spender", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [
			{"name": "_to", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"name": "transfer",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [
			{"name": "_owner", "type": "address"},
			{"name": "_spender", "type": "address"}
		],
		"name": "allowance",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "_owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "balance", "type": "uint256"}],
		"type": "function"
	}
]`

// ChainBackend is what the token facade needs from a node connection.
// *ethclient.Client satisfies it.
type ChainBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// ERC20Facade submits ERC-20 transactions signed by the configured wallet key
// and blocks until they are mined.
type ERC20Facade struct {
	backend        ChainBackend
	key            *ecdsa.PrivateKey
	chainID        *big.Int
	confirmTimeout time.Duration
	parsed         abi.ABI
}

// NewERC20Facade creates a token facade. key may be nil, in which case every
// write is rejected with models.ErrApprovalFailed.
func NewERC20Facade(backend ChainBackend, key *ecdsa.PrivateKey, chainID *big.Int, confirmTimeout time.Duration) (*ERC20Facade, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return &ERC20Facade{
		backend:        backend,
		key:            key,
		chainID:        chainID,
		confirmTimeout: confirmTimeout,
		parsed:         parsed,
	}, nil
}

// ParsePrivateKey reads a hex encoded secp256k1 key, with or without 0x prefix.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// SignerAddress returns the address of the configured key, or an empty string.
func (f *ERC20Facade) SignerAddress() string {
	if f.key == nil {
		return ""
	}
	return crypto.PubkeyToAddress(f.key.PublicKey).Hex()
}

// Approve lets spender pull amount base units of the token at contract from owner.
func (f *ERC20Facade) Approve(ctx context.Context, owner, contract, spender string, amount *big.Int) (*models.ApprovalReceipt, error) {
	if !common.IsHexAddress(spender) {
		return nil, f.fail("approve", fmt.Errorf("invalid spender address %q", spender))
	}
	return f.submit(ctx, "approve", owner, contract, common.HexToAddress(spender), amount)
}

// Transfer sends amount base units of the token at contract from owner to to.
func (f *ERC20Facade) Transfer(ctx context.Context, owner, contract, to string, amount *big.Int) (*models.ApprovalReceipt, error) {
	if !common.IsHexAddress(to) {
		return nil, f.fail("transfer", fmt.Errorf("invalid recipient address %q", to))
	}
	return f.submit(ctx, "transfer", owner, contract, common.HexToAddress(to), amount)
}

// Allowance returns how many base units spender may still pull from owner.
func (f *ERC20Facade) Allowance(ctx context.Context, contract, owner, spender string) (*big.Int, error) {
	for _, a := range []string{contract, owner, spender} {
		if !common.IsHexAddress(a) {
			return nil, fmt.Errorf("%w: invalid address %q", models.ErrApprovalFailed, a)
		}
	}
	return f.call(ctx, contract, "allowance", common.HexToAddress(owner), common.HexToAddress(spender))
}

// BalanceOf returns the token balance of owner in base units.
func (f *ERC20Facade) BalanceOf(ctx context.Context, contract, owner string) (*big.Int, error) {
	if !common.IsHexAddress(contract) || !common.IsHexAddress(owner) {
		return nil, fmt.Errorf("%w: invalid address", models.ErrApprovalFailed)
	}
	return f.call(ctx, contract, "balanceOf", common.HexToAddress(owner))
}

func (f *ERC20Facade) call(ctx context.Context, contract, method string, args ...any) (*big.Int, error) {
	c := bind.NewBoundContract(common.HexToAddress(contract), f.parsed, f.backend, f.backend, f.backend)

	var out []any
	if err := c.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrApprovalFailed, method, err)
	}
	if len(out) == 0 {
		return big.NewInt(0), nil
	}
	v, ok := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	if !ok || v == nil {
		return big.NewInt(0), nil
	}
	return v, nil
}

func (f *ERC20Facade) submit(ctx context.Context, method, owner, contract string, to common.Address, amount *big.Int) (*models.ApprovalReceipt, error) {
	if f.key == nil {
		return nil, f.fail(method, fmt.Errorf("no signing key configured"))
	}
	if !common.IsHexAddress(owner) || !common.IsHexAddress(contract) {
		return nil, f.fail(method, fmt.Errorf("invalid owner %q or contract %q", owner, contract))
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, f.fail(method, fmt.Errorf("amount must be positive"))
	}

	from := crypto.PubkeyToAddress(f.key.PublicKey)
	if from != common.HexToAddress(owner) {
		return nil, f.fail(method, fmt.Errorf("signer %s is not the owner %s", from.Hex(), owner))
	}

	opts, err := bind.NewKeyedTransactorWithChainID(f.key, f.chainID)
	if err != nil {
		return nil, f.fail(method, err)
	}
	opts.Context = ctx

	logger.Log.Infow("submitting token transaction",
		"method", method,
		"owner", owner,
		"contract", contract,
		"to", to.Hex(),
		"amount", amount.String(),
	)

	c := bind.NewBoundContract(common.HexToAddress(contract), f.parsed, f.backend, f.backend, f.backend)
	tx, err := c.Transact(opts, method, to, amount)
	if err != nil {
		return nil, f.fail(method, fmt.Errorf("submit: %w", err))
	}

	waitCtx := ctx
	if f.confirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, f.confirmTimeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(waitCtx, f.backend, tx)
	if err != nil {
		return nil, f.fail(method, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, f.fail(method, fmt.Errorf("transaction %s reverted", tx.Hash().Hex()))
	}

	metrics.ObserveTokenOperation(method, true)

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	logger.Log.Infow("token transaction confirmed",
		"method", method,
		"tx_hash", tx.Hash().Hex(),
		"block", block,
	)

	return &models.ApprovalReceipt{
		TransactionHash: tx.Hash().Hex(),
		ConfirmedBlock:  block,
	}, nil
}

func (f *ERC20Facade) fail(method string, err error) error {
	metrics.ObserveTokenOperation(method, false)
	logger.Log.Errorw("token transaction failed", "method", method, "error", err)
	return fmt.Errorf("%w: %s: %v", models.ErrApprovalFailed, method, err)
}
