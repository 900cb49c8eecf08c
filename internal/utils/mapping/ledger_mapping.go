package mapping

import (
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/SscSPs/dual_currency_display/internal/models"
)

// ToModelOriginalPrice converts a domain OriginalPriceRecord to a model OriginalPrice
func ToModelOriginalPrice(d domain.OriginalPriceRecord) models.OriginalPrice {
	return models.OriginalPrice{
		ItemID:         d.ItemID,
		PriceKind:      string(d.Kind),
		SourceCurrency: d.SourceCurrency.String(),
		Amount:         d.Amount,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainOriginalPrice converts a model OriginalPrice to a domain OriginalPriceRecord
func ToDomainOriginalPrice(m models.OriginalPrice) domain.OriginalPriceRecord {
	return domain.OriginalPriceRecord{
		ItemID:         m.ItemID,
		Kind:           domain.PriceKind(m.PriceKind),
		SourceCurrency: domain.Currency(m.SourceCurrency),
		Amount:         m.Amount,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToModelPriceBackup converts a domain BackupRecord to a model PriceBackup
func ToModelPriceBackup(d domain.BackupRecord) models.PriceBackup {
	return models.PriceBackup{
		BackupID:  d.BackupID,
		BatchID:   d.BatchID,
		ItemID:    d.ItemID,
		PriceKind: string(d.Kind),
		Amount:    d.Amount,
		Currency:  d.Currency.String(),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainBackupRecord converts a model PriceBackup to a domain BackupRecord
func ToDomainBackupRecord(m models.PriceBackup) domain.BackupRecord {
	return domain.BackupRecord{
		BackupID:  m.BackupID,
		BatchID:   m.BatchID,
		ItemID:    m.ItemID,
		Kind:      domain.PriceKind(m.PriceKind),
		Amount:    m.Amount,
		Currency:  domain.Currency(m.Currency),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainBackupRecords converts a slice of model PriceBackup to domain BackupRecord
func ToDomainBackupRecords(ms []models.PriceBackup) []domain.BackupRecord {
	if ms == nil {
		return nil
	}
	ds := make([]domain.BackupRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBackupRecord(m)
	}
	return ds
}
