package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/zstd"

	"salespoint/internal/domain/auth"
	"salespoint/internal/domain/catalog"
	"salespoint/pkg/logger"
)

// AuditAction represents the type of audited operation.
type AuditAction string

const (
	AuditActionCreate        AuditAction = "create"
	AuditActionPasswordReset AuditAction = "password_reset"
)

// CompressionAlgo specifies the compression algorithm used.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry represents a single audit log entry.
type AuditEntry struct {
	ID                uuid.UUID       `db:"id"`
	EntityType        string          `db:"entity_type"`
	EntityID          string          `db:"entity_id"`
	Action            AuditAction     `db:"action"`
	Payload           json.RawMessage `db:"payload"`
	PayloadCompressed []byte          `db:"payload_compressed"`
	CompressionAlgo   CompressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditStore records write operations. Payloads above the threshold are
// stored zstd-compressed.
type AuditStore struct {
	pool              *pgxpool.Pool
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewAuditStore creates a new audit store.
func NewAuditStore(pool *pgxpool.Pool) (*AuditStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditStore{
		pool:              pool,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

// Log records an audit entry.
func (s *AuditStore) Log(ctx context.Context, entry AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	entry.CompressionAlgo = CompressionNone
	if len(entry.Payload) > s.compressThreshold {
		entry.PayloadCompressed = s.encoder.EncodeAll(entry.Payload, nil)
		entry.Payload = nil
		entry.CompressionAlgo = CompressionZstd
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_log (id, entity_type, entity_id, action, payload, payload_compressed, compression_algo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.EntityType, entry.EntityID, entry.Action,
		entry.Payload, entry.PayloadCompressed, entry.CompressionAlgo, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Payload returns an entry's payload, decompressing when needed.
func (s *AuditStore) Payload(entry AuditEntry) (json.RawMessage, error) {
	if entry.CompressionAlgo != CompressionZstd {
		return entry.Payload, nil
	}
	raw, err := s.decoder.DecodeAll(entry.PayloadCompressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress audit payload: %w", err)
	}
	return raw, nil
}

// LogCreate records an entity creation. Audit failures never fail the
// request; they are logged and dropped.
func (s *AuditStore) LogCreate(ctx context.Context, entityType string, entityID int64, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Warn(ctx, "audit payload marshal failed", "entity_type", entityType, "error", err)
		return
	}

	err = s.Log(ctx, AuditEntry{
		EntityType: entityType,
		EntityID:   fmt.Sprintf("%d", entityID),
		Action:     AuditActionCreate,
		Payload:    raw,
	})
	if err != nil {
		logger.Warn(ctx, "audit write failed", "entity_type", entityType, "error", err)
	}
}

// LogPasswordReset records a completed password reset. The password
// itself is never part of the payload. Best-effort like LogCreate.
func (s *AuditStore) LogPasswordReset(ctx context.Context, userID string) {
	err := s.Log(ctx, AuditEntry{
		EntityType: "user",
		EntityID:   userID,
		Action:     AuditActionPasswordReset,
	})
	if err != nil {
		logger.Warn(ctx, "audit write failed", "entity_type", "user", "error", err)
	}
}

// Ensure interface compliance
var (
	_ catalog.AuditLogger = (*AuditStore)(nil)
	_ auth.AuditLogger    = (*AuditStore)(nil)
)
