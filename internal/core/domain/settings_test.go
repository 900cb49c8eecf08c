package domain_test

import (
	"testing"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseExchangeRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "fixed rate", input: "1.95583", want: "1.95583"},
		{name: "integer", input: "2", want: "2"},
		{name: "surrounding whitespace", input: " 1.9 ", want: "1.9"},
		{name: "six fractional digits", input: "1.955830", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "zero with fraction", input: "0.00000", wantErr: true},
		{name: "negative", input: "-1.5", wantErr: true},
		{name: "comma separator", input: "1,95583", wantErr: true},
		{name: "exponent", input: "1e2", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "text", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseExchangeRate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDefaultStoreSettings(t *testing.T) {
	s := domain.DefaultStoreSettings()
	assert.True(t, dec("1.95583").Equal(s.Rate))
	assert.True(t, s.DualDisplayEnabled)
	assert.Equal(t, domain.BGN, s.ActiveCurrency)

	cfg := s.DisplayConfig()
	assert.Equal(t, s.ActiveCurrency, cfg.ActiveCurrency)
	assert.Equal(t, s.DualDisplayEnabled, cfg.DualDisplayEnabled)
	assert.True(t, s.Rate.Equal(cfg.Rate))
}

func TestPriceableItem_ActivePrice(t *testing.T) {
	regular := dec("20.00")
	sale := dec("15.00")

	item := domain.PriceableItem{ID: 1, Type: domain.SimpleItem, RegularPrice: &regular, SalePrice: &sale}
	price, kind, ok := item.ActivePrice()
	assert.True(t, ok)
	assert.Equal(t, domain.Regular, kind)
	assert.True(t, regular.Equal(price))

	item.OnSale = true
	price, kind, ok = item.ActivePrice()
	assert.True(t, ok)
	assert.Equal(t, domain.Sale, kind)
	assert.True(t, sale.Equal(price))

	empty := domain.PriceableItem{ID: 2, Type: domain.SimpleItem}
	_, _, ok = empty.ActivePrice()
	assert.False(t, ok)
	assert.False(t, empty.HasAnyPrice())

	zero := dec("0")
	free := domain.PriceableItem{ID: 3, Type: domain.SimpleItem, RegularPrice: &zero}
	assert.True(t, free.HasAnyPrice())
}
