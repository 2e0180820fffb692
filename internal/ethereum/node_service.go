package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

// FetchTransactions looks up the given transactions and their receipts
// concurrently. Lookups that fail are joined into the returned error; the
// successful ones are still returned.
func (s *EthService) FetchTransactions(ctx context.Context, hashes []string) ([]*Transaction, error) {
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	signer := types.LatestSignerForChainID(chainID)

	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.getTransactionByHash(ctx, signer, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Transaction)
	}

	return results, aggrErr
}

func (s *EthService) getTransactionByHash(ctx context.Context, signer types.Signer, hash common.Hash) *TxResult {
	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	from, err := types.Sender(signer, tx)
	if err != nil {
		return &TxResult{nil, err}
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &TxResult{
		Transaction: &Transaction{
			TransactionHash:   tx.Hash().Hex(),
			TransactionStatus: receipt.Status,
			BlockNumber:       blockNumber,
			From:              from.Hex(),
			To:                to,
			GasUsed:           receipt.GasUsed,
			Value:             tx.Value().String(),
		},
		Error: nil,
	}
}
