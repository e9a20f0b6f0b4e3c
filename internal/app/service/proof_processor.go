package service

import (
	"context"
	"errors"

	"github.com/ujwegh/leadmart/internal/app/logger"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"github.com/ujwegh/leadmart/internal/app/service/clients"
	"go.uber.org/zap"
)

const proofBatchSize = 20

type ProofProcessor interface {
	ProcessUnverified()
	ProcessProofs(ctx context.Context)
}

type ProofProcessorImpl struct {
	moneyRepo   repository.MoneyRepository
	proofCache  ProofCache
	proofClient clients.ProofClient
	proofChan   chan models.Money
}

func NewProofProcessor(moneyRepo repository.MoneyRepository,
	proofCache ProofCache,
	proofClient clients.ProofClient,
	proofChan chan models.Money) *ProofProcessorImpl {
	return &ProofProcessorImpl{
		moneyRepo:   moneyRepo,
		proofCache:  proofCache,
		proofClient: proofClient,
		proofChan:   proofChan,
	}
}

// ProcessUnverified publishes every pending request whose proof was never checked.
// It blocks until all of them are taken from the channel.
func (pp *ProofProcessorImpl) ProcessUnverified() {
	logger.Log.Info("start processing unverified proofs")
	total, err := pp.moneyRepo.CountUnverified()
	if err != nil {
		logger.Log.Error("failed to count unverified proofs", zap.Error(err))
		return
	}
	// Checked requests leave the unverified set, so every page is read before publishing.
	pending := make([]models.Money, 0, total)
	for offset := 0; offset < total; offset += proofBatchSize {
		batch, err := pp.moneyRepo.GetUnverified(proofBatchSize, offset)
		if err != nil {
			logger.Log.Error("failed to get unverified proofs", zap.Error(err))
			return
		}
		pending = append(pending, *batch...)
	}
	for _, money := range pending {
		pp.proofChan <- money
	}
	logger.Log.Info("published unverified proofs", zap.Int("total", total))
}

func (pp *ProofProcessorImpl) ProcessProofs(ctx context.Context) {
	for {
		select {
		case money := <-pp.proofChan:
			pp.checkProof(&money)
		case <-ctx.Done():
			return
		}
	}
}

func (pp *ProofProcessorImpl) checkProof(money *models.Money) {
	ctx := context.Background()

	logger.Log.Debug("checking proof", zap.Int64("money_id", money.ID))
	status := models.VERIFIED
	if err := pp.proofClient.CheckProof(money.SecureURL); err != nil {
		if !errors.Is(err, clients.ErrProofUnreachable) {
			logger.Log.Debug("proof check failed, retrying later", zap.Error(err))
			pp.proofCache.AddMoney(money)
			return
		}
		status = models.UNREACHABLE
	}
	if err := pp.moneyRepo.UpdateProofStatus(ctx, money.ID, status); err != nil {
		logger.Log.Error("failed to update proof status", zap.Int64("money_id", money.ID), zap.Error(err))
		pp.proofCache.AddMoney(money)
	}
}
