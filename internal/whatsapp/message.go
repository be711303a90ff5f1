// Package whatsapp renders a checked-out cart into the pre-filled message
// handed to the external chat channel. Composition is pure: no store is
// touched here.
package whatsapp

import (
	"fmt"
	"strconv"
	"strings"

	"aquashop/internal/domain"
)

// newline is the percent-encoded separator the text query parameter needs.
// Everything else stays literal; a URL parser decoding the parameter must
// reproduce the itemized lines exactly.
const newline = "%0A"

// ComposeOrderMessage builds the order summary sent to the shop: greeting,
// customer identity, truncated order id, one bullet per line with a
// zero-decimal rupee amount, and the total.
func ComposeOrderMessage(shopName, customerName, customerEmail string, lines []domain.CartLine, total float64, orderID string) string {
	id := orderID
	if len(id) > 8 {
		id = id[:8]
	}

	var b strings.Builder
	b.WriteString("*Namaste " + shopName + "!* 🙏" + newline)
	b.WriteString("I would like to place an order:" + newline + newline)
	b.WriteString("👤 *Name:* " + customerName + newline)
	b.WriteString("📧 *Email:* " + customerEmail + newline)
	b.WriteString("🆔 *Order ID:* " + id + newline + newline)
	b.WriteString("*🛒 Order Details:*" + newline)
	for _, l := range lines {
		fmt.Fprintf(&b, "• %s (x%d) - ₹%s%s", l.Name, l.Quantity, Rupees(l.Subtotal()), newline)
	}
	b.WriteString(newline + "💰 *Total Value:* ₹" + Rupees(total) + newline)
	b.WriteString("----------------------------" + newline)
	b.WriteString("Please confirm stock availability and shipping charges to my location.")
	return b.String()
}

// DeepLink builds the wa.me URI for a composed message. The message already
// carries its own newline encoding.
func DeepLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + message
}

// Rupees formats an amount with zero decimal places, as shown everywhere in
// the storefront.
func Rupees(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
