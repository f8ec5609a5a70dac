package cmd

import (
	"context"
	"errors"
	"ethwallet/internal/config"
	"ethwallet/internal/core"
	"ethwallet/internal/db"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/http/handler"
	"ethwallet/internal/http/handler/middleware"
	"ethwallet/internal/http/payload"
	"ethwallet/internal/http/server"
	"ethwallet/internal/keystore"
	"ethwallet/internal/network"
	"ethwallet/internal/repository"
	"ethwallet/internal/storage"
	"ethwallet/pkg/jwt"
	"ethwallet/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const startupCheckTimeout = 10 * time.Second

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger("ethwallet", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repositories
	walletRepo := repository.NewWalletRepository(dbConn)
	if err := walletRepo.Migrate(); err != nil {
		logger.Errorw("failed to migrate wallet table", "error", err)
		return err
	}

	networkRepo := repository.NewNetworkRepository(dbConn)
	if err := networkRepo.Migrate(); err != nil {
		logger.Errorw("failed to migrate network table", "error", err)
		return err
	}

	// networks
	networks := network.NewNetworks(logger, networkRepo, config.InfuraToken)
	if err := networks.Seed(context.Background()); err != nil {
		logger.Errorw("failed to seed preset networks", "error", err)
		return err
	}

	if config.NetworkChainID != "" {
		if err := pinNetwork(networks, config.NetworkChainID); err != nil {
			logger.Errorw("failed to pin network", "error", err, "chain_id", config.NetworkChainID)
			return err
		}
		logger.Infow("network pinned for this process", "chain_id", config.NetworkChainID)
	}

	// keystores
	store, err := storage.NewKeystoreStore(logger, config.DataDir)
	if err != nil {
		logger.Errorw("failed to open keystore directory", "error", err, "dir", config.DataDir)
		return err
	}

	dialer := ethereum.NewDialer(logger, config.RPCTimeout)
	defer dialer.Close()

	checkEndpoint(logger, networks, dialer)

	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	walletService := core.NewWalletService(
		logger,
		store,
		walletRepo,
		networks,
		chainDialer{dialer},
		jwtService,
		keystore.ScryptParams{N: config.ScryptN, R: config.ScryptR, P: config.ScryptP})

	keystores, err := walletService.LoadAllKeystores(context.Background())
	if err != nil {
		logger.Errorw("failed to load keystores", "error", err)
		return err
	}
	logger.Infow("keystores loaded", "count", len(keystores), "dir", store.Dir())

	// handlers
	walletHlr := handler.NewWalletHandler(logger, payload.Decoder{}, walletService)
	networkHlr := handler.NewNetworkHandler(logger, payload.Decoder{}, networks)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, walletHlr.HandleAuthenticate)
	mux.HandleFunc(handler.VerifyPassword, walletHlr.HandleVerifyPassword)
	mux.HandleFunc(handler.ImportMnemonic, walletHlr.HandleImportMnemonic)
	mux.HandleFunc(handler.ImportKey, walletHlr.HandleImportKey)
	mux.HandleFunc(handler.CreateWallet, walletHlr.HandleCreateWallet)
	mux.HandleFunc(handler.CreateAccount, walletHlr.HandleCreateAccount)
	mux.HandleFunc(handler.ExportKey, walletHlr.HandleExportKey)
	mux.HandleFunc(handler.ListWallets, walletHlr.RequireToken(walletHlr.HandleListWallets))
	mux.HandleFunc(handler.CurrentWallet, walletHlr.RequireToken(walletHlr.HandleCurrentWallet))
	mux.HandleFunc(handler.SelectWallet, walletHlr.RequireToken(walletHlr.HandleSelectWallet))
	mux.HandleFunc(handler.RenameWallet, walletHlr.RequireToken(walletHlr.HandleRenameWallet))
	mux.HandleFunc(handler.DeleteWallet, walletHlr.RequireToken(walletHlr.HandleDeleteWallet))
	mux.HandleFunc(handler.ListKeystores, walletHlr.RequireToken(walletHlr.HandleListKeystores))

	mux.HandleFunc(handler.SendNative, walletHlr.HandleSendNative)
	mux.HandleFunc(handler.SendToken, walletHlr.HandleSendToken)

	mux.HandleFunc(handler.Balance, walletHlr.RequireToken(walletHlr.HandleBalance))
	mux.HandleFunc(handler.TokenBalances, walletHlr.RequireToken(walletHlr.HandleTokenBalances))
	mux.HandleFunc(handler.GasPrice, walletHlr.RequireToken(walletHlr.HandleGasPrice))
	mux.HandleFunc(handler.EstimateGas, walletHlr.RequireToken(walletHlr.HandleEstimateGas))
	mux.HandleFunc(handler.Address, walletHlr.RequireToken(walletHlr.HandleAddress))
	mux.HandleFunc(handler.TxStatus, walletHlr.RequireToken(walletHlr.HandleTxStatus))

	mux.HandleFunc(handler.ListNetworks, networkHlr.HandleListNetworks)
	mux.HandleFunc(handler.CurrentNetwork, networkHlr.HandleCurrentNetwork)
	mux.HandleFunc(handler.AddNetwork, walletHlr.RequireToken(networkHlr.HandleAddNetwork))
	mux.HandleFunc(handler.DeleteNetwork, walletHlr.RequireToken(networkHlr.HandleDeleteNetwork))
	mux.HandleFunc(handler.SelectNetwork, walletHlr.RequireToken(networkHlr.HandleSelectNetwork))

	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv, sig)
}

// chainDialer hands out node clients behind the core.ChainClient port.
type chainDialer struct {
	dialer *ethereum.Dialer
}

func (d chainDialer) Dial(ctx context.Context, rpcURL string) (core.ChainClient, error) {
	client, err := d.dialer.Dial(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// checkEndpoint warns when the active network's endpoint is unreachable or
// serves another chain. Startup continues either way.
func checkEndpoint(logger *zap.SugaredLogger, networks *network.Networks, dialer *ethereum.Dialer) {
	ctx, cancel := context.WithTimeout(context.Background(), startupCheckTimeout)
	defer cancel()

	current, err := networks.Current(ctx)
	if err != nil {
		logger.Warnw("could not resolve active network", "error", err)
		return
	}

	client, err := dialer.Dial(ctx, current.RPCURL)
	if err != nil {
		logger.Warnw("rpc endpoint unreachable", "error", err, "network", current.Name)
		return
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Warnw("could not read chain id", "error", err, "network", current.Name)
		return
	}
	if chainID.Cmp(current.ChainID) != 0 {
		logger.Warnw("rpc endpoint serves another chain",
			"network", current.Name,
			"expected_chain_id", current.ChainID.String(),
			"chain_id", chainID.String())
		return
	}

	logger.Infow("rpc endpoint ready", "network", current.Name, "chain_id", chainID.String())
}

func pinNetwork(networks *network.Networks, chainID string) error {
	id, err := payload.ParseChainID(chainID)
	if err != nil {
		return err
	}

	pinned, err := networks.FromChainID(context.Background(), id)
	if err != nil {
		return fmt.Errorf("resolve chain id: %w", err)
	}
	return networks.SetOverride(&pinned)
}

type httpServer interface {
	Run() <-chan error
	Shutdown() error
}

func run(server httpServer, sig <-chan os.Signal) error {
	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if (err == nil || errors.Is(err, http.ErrServerClosed)) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
