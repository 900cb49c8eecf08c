package utils

import (
	"html"
	"strings"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
)

const (
	wrapperOpen   = `<span class="dual-currency-wrapper">`
	secondaryOpen = `<span class="secondary-currency">(`
	secondaryEnd  = `)</span>`
	spanClose     = `</span>`
)

// RenderPriceHTML turns a PriceDisplay into the storefront markup fragment:
//
//	<span class="dual-currency-wrapper">€10.00 <span class="secondary-currency">(19.56 лв.)</span></span>
//
// Without a secondary amount only the primary price is returned, unwrapped.
func RenderPriceHTML(d domain.PriceDisplay) string {
	if d.IsSalePair() {
		var b strings.Builder
		b.WriteString("<del>")
		b.WriteString(renderSingle(*d.Was, nil, d.WasSecondary, nil))
		b.WriteString("</del> <ins>")
		b.WriteString(renderSingle(d.Primary, d.PrimaryMax, d.Secondary, d.SecondaryMax))
		b.WriteString("</ins>")
		return b.String()
	}
	return renderSingle(d.Primary, d.PrimaryMax, d.Secondary, d.SecondaryMax)
}

func renderSingle(primary domain.Money, primaryMax, secondary, secondaryMax *domain.Money) string {
	main := renderRange(primary, primaryMax)
	if secondary == nil {
		return main
	}

	var b strings.Builder
	b.WriteString(wrapperOpen)
	b.WriteString(main)
	b.WriteString(" ")
	b.WriteString(secondaryOpen)
	b.WriteString(renderRange(*secondary, secondaryMax))
	b.WriteString(secondaryEnd)
	b.WriteString(spanClose)
	return b.String()
}

func renderRange(low domain.Money, high *domain.Money) string {
	text := html.EscapeString(FormatMoney(low))
	if high != nil {
		text += " - " + html.EscapeString(FormatMoney(*high))
	}
	return text
}
