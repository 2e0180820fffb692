package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrUserRejected = errors.New("request rejected by wallet")
	ErrReverted     = errors.New("execution reverted")
	ErrNoAccount    = errors.New("no account available")
)

const (
	// EIP-1193 "User Rejected Request".
	userRejectedCode = 4001
	// geth reports reverts with JSON-RPC code 3.
	revertedCode = 3
)

func normalize(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, keystore.ErrDecrypt) || errors.Is(err, keystore.ErrLocked) {
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case userRejectedCode:
			return fmt.Errorf("%w: %w", ErrUserRejected, err)
		case revertedCode:
			return fmt.Errorf("%w: %w", ErrReverted, err)
		}
	}

	if strings.Contains(err.Error(), "execution reverted") {
		return fmt.Errorf("%w: %w", ErrReverted, err)
	}

	return err
}
