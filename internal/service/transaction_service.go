package service

import (
	"context"
	"fmt"
	"time"

	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionProvider is the source of the chain log. The in-memory sample set and
// the postgres table both satisfy it.
type TransactionProvider interface {
	All(ctx context.Context) ([]*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) error
}

// blockInterval approximates the chain's block time when numbering new records.
const blockInterval = 12 * time.Second

type TransactionService struct {
	provider TransactionProvider
	threats  *ThreatService
	now      func() time.Time
	logger   *zap.Logger
}

func NewTransactionService(provider TransactionProvider, threats *ThreatService, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		provider: provider,
		threats:  threats,
		now:      time.Now,
		logger:   logger,
	}
}

// Create logs a validated record. The threat classifier runs on the submitted data and its
// verdict is attached to the response; classifier failures are logged and ignored.
func (s *TransactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	now := s.now()

	data := models.EventData{
		Type:            models.TransactionType(req.Type),
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     sanitizeUTF8(req.Description),
		Category:        sanitizeUTF8(req.Category),
		Date:            req.Date,
		Tags:            sanitizeUTF8(req.Tags),
		Network:         req.Network,
		UserAddress:     req.UserAddress,
		ContractAddress: req.ContractAddress,
		ReferenceID:     req.ReferenceID,
		User:            req.User,
		Details:         req.Details,
	}

	tx := &models.Transaction{
		ID:          fmt.Sprintf("evt_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		Data:        data,
		Timestamp:   now.UnixMilli(),
		Status:      models.StatusLogged,
		BlockNumber: now.Unix() / int64(blockInterval/time.Second),
	}

	if err := s.provider.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.logger.Info("Transaction logged",
		zap.String("id", tx.ID),
		zap.String("type", string(data.Type)),
	)

	resp := &dto.TransactionResponse{Transaction: tx}
	if s.threats != nil {
		threat, err := s.threats.Analyze(ctx, ThreatInputFromEvent(data))
		if err != nil {
			s.logger.Warn("Threat check failed for logged transaction", zap.String("id", tx.ID), zap.Error(err))
		}
		resp.Threat = threat
	}

	return resp, nil
}

// Query returns one page of the chain log.
func (s *TransactionService) Query(ctx context.Context, q TransactionQuery) (TransactionPage, error) {
	records, err := s.provider.All(ctx)
	if err != nil {
		return TransactionPage{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	return QueryTransactions(records, q), nil
}
