package service

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ujwegh/leadmart/internal/app/logger"
	"github.com/ujwegh/leadmart/internal/app/models"
	"go.uber.org/zap"
)

// ProofCache parks top-up requests whose proof check failed for a transient reason.
// An expired entry is published back to the proof channel.
type ProofCache interface {
	AddMoney(money *models.Money)
}

type ProofCacheImpl struct {
	*cache.Cache
	proofChan chan models.Money
}

func NewProofCache(defaultExpiration, cleanupInterval time.Duration, proofChan chan models.Money) *ProofCacheImpl {
	c := cache.New(defaultExpiration, cleanupInterval)
	c.OnEvicted(func(key string, value interface{}) {
		money, ok := value.(models.Money)
		if !ok {
			return
		}
		proofChan <- money
	})
	return &ProofCacheImpl{
		Cache:     c,
		proofChan: proofChan,
	}
}

func (c *ProofCacheImpl) AddMoney(money *models.Money) {
	key := strconv.FormatInt(money.ID, 10)
	err := c.Add(key, *money, cache.DefaultExpiration)
	if err != nil {
		logger.Log.Debug("money request already waiting for retry", zap.Int64("money_id", money.ID))
	}
}
