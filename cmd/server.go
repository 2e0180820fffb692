package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txledger/internal/config"
	"txledger/internal/core"
	"txledger/internal/db"
	"txledger/internal/ethereum"
	"txledger/internal/http/handler"
	"txledger/internal/http/handler/middleware"
	"txledger/internal/http/payload"
	"txledger/internal/http/server"
	"txledger/internal/kvstore"
	"txledger/internal/repository"
	"txledger/pkg/jwt"
	"txledger/pkg/log"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("txledger", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// journal
	repo := repository.NewSubmissionRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	wallet, err := newWallet(logger, config, client)
	if err != nil {
		logger.Errorw("failed to set up wallet", "error", err, "mode", config.WalletMode)
		return err
	}

	ledger, err := ethereum.NewLedger(client, common.HexToAddress(config.ContractAddress))
	if err != nil {
		logger.Errorw("failed to bind ledger contract", "error", err)
		return err
	}

	store, err := kvstore.Open(config.KVDir, logger)
	if err != nil {
		logger.Errorw("failed to open key-value store", "error", err)
		return err
	}
	defer store.Close()

	// core
	cache := core.NewLedgerCache()
	form := core.NewForm()
	session := core.NewSession(logger, wallet, ledger, store, cache)
	submitter := core.NewSubmitter(
		logger,
		session,
		form,
		cache,
		ledger,
		repo,
		config.ConfirmationTimeout)
	history := core.NewHistory(logger, repo, ethereum.NewEthService(client))

	bootstrap(logger, session)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// handler
	ledgerHlr := handler.NewLedgerHandler(
		logger,
		payload.Decoder{},
		session,
		form,
		submitter,
		history,
		jwtService)

	// register routes
	mux := http.NewServeMux()
	ledgerHlr.Register(mux)

	// middleware
	loggingMw := middleware.NewLoggingMiddleware(logger)
	hdlr := loggingMw.Logging(mux)
	hdlr = loggingMw.Recovery(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// newWallet returns nil when no wallet is configured, leaving the session
// without a wallet object.
func newWallet(logger *zap.SugaredLogger, cfg config.App, client *ethclient.Client) (core.Wallet, error) {
	switch cfg.WalletMode {
	case config.WalletModeRPC:
		rpcClient, err := rpc.DialContext(context.Background(), cfg.WalletRPCURL)
		if err != nil {
			return nil, fmt.Errorf("dial wallet: %w", err)
		}
		return ethereum.NewRPCWallet(rpcClient), nil
	case config.WalletModeKeystore:
		ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
		logger.Infow("keystore wallet loaded", "accounts", len(ks.Accounts()))
		return ethereum.NewKeystoreWallet(ks, client, cfg.KeystorePassphrase), nil
	default:
		logger.Warnw("no wallet configured")
		return nil, nil
	}
}

// bootstrap restores the session the way a freshly loaded page does: read the
// cached count, look for an authorized account, then mirror the ledger count.
func bootstrap(logger *zap.SugaredLogger, session *core.Session) {
	ctx := context.Background()

	if err := session.LoadCachedTransactionCount(); err != nil {
		logger.Warnw("failed to load cached transaction count", "error", err)
	}

	if err := session.CheckConnection(ctx); err != nil {
		logger.Warnw("wallet connection check failed", "error", err)
	}

	if err := session.RefreshCachedTransactionCount(ctx); err != nil {
		logger.Warnw("failed to refresh transaction count", "error", err)
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
