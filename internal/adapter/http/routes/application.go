package routes

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log"

	"cloudpayments_bridge/internal/adapter/persistence/repository"
	"cloudpayments_bridge/internal/config"
	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/googlepay"
	"cloudpayments_bridge/internal/infrastructure/database"
	"cloudpayments_bridge/internal/infrastructure/events"
	"cloudpayments_bridge/internal/infrastructure/sandbox"
	"cloudpayments_bridge/internal/usecase"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

var errInvalidPublicKey = errors.New("CRYPTOGRAM_PUBLIC_KEY is not an RSA public key")

// application owns the bridge, its UI thread and the journal sinks.
type application struct {
	looper  *usecase.Looper
	bridge  *usecase.BridgeUseCase
	host    *sandbox.Host
	journal *usecase.FlowJournalWorker
	flows   interfaces.IFlowRepository
	closers []func() error
}

func newApplication(ctx context.Context, cfg config.Config) (*application, error) {
	key, err := cryptogramKey(cfg.Sandbox.PublicKeyPEM)
	if err != nil {
		return nil, err
	}

	app := &application{}
	var sinks []interfaces.IFlowJournal
	if cfg.Journal.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureFlowsTable(ctx, ddb, cfg.Journal.Table); err != nil {
			log.Printf("[bridge][app] flows table check failed table=%s err=%v", cfg.Journal.Table, err)
		}
		repo := repository.NewFlowDynamoRepository(ddb, cfg.Journal.Table)
		app.flows = repo
		sinks = append(sinks, repo)
	}
	if cfg.Kafka.Enabled {
		producer := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		app.closers = append(app.closers, producer.Close)
		sinks = append(sinks, producer)
	}
	if len(sinks) > 0 {
		app.journal = usecase.NewFlowJournalWorker(cfg.Bridge.JournalBuffer, sinks...)
	}

	app.looper = usecase.StartLooper(cfg.Bridge.QueueSize)
	app.host = sandbox.NewHost(sandbox.NewChallengePresenter())
	app.bridge = usecase.NewBridgeUseCase(
		app.looper,
		sandbox.NewCardSDK(key, cfg.Sandbox.KeyVersion),
		sandbox.PaymentsClientFactory{},
		googlepay.NewBuilder(),
		app.host.Presenter(),
		usecase.BridgeOptions{
			ThreeDSTimeout:   cfg.Bridge.ThreeDSTimeout,
			GooglePayTimeout: cfg.Bridge.GooglePayTimeout,
			OnFlowResolved:   app.onFlowResolved,
		},
	)
	log.Printf("[bridge][app] ready journal_sinks=%d", len(sinks))
	return app, nil
}

func (a *application) onFlowResolved(rec entities.FlowRecord) {
	if a.journal != nil {
		a.journal.Enqueue(rec)
	}
}

// Close resolves outstanding flows, drains the UI thread and flushes the
// journal, in that order.
func (a *application) Close() {
	a.bridge.Close()
	a.looper.Stop()
	if a.journal != nil {
		a.journal.Close()
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Printf("[bridge][app] close failed err=%v", err)
		}
	}
}

// cryptogramKey parses a PEM public key or generates an ephemeral one.
func cryptogramKey(raw string) (*rsa.PublicKey, error) {
	if raw == "" {
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, fmt.Errorf("generate cryptogram key: %w", err)
		}
		log.Printf("[bridge][app] using ephemeral cryptogram key")
		return &priv.PublicKey, nil
	}

	block, _ := pem.Decode([]byte(raw))
	if block == nil {
		return nil, errInvalidPublicKey
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidPublicKey, err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errInvalidPublicKey
	}
	return key, nil
}
