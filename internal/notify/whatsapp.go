// Package notify builds outbound notifications for the group: the
// WhatsApp order link and the best-effort webhook ping on new items.
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

// BuildWhatsAppMessage formats the missing-items list as the group's
// "faltantes" message.
func BuildWhatsAppMessage(items []models.MissingItem, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*FALTANTES COMANDA - %s* 🚨\n\n", now.Format("02/01/2006"))
	for i, item := range items {
		fmt.Fprintf(&b, "%d. *%s* (%s)\n", i+1, item.Name, item.Quantity)
		fmt.Fprintf(&b, "   Solicitado por: %s\n", item.Requester)
		if item.Price != "" {
			fmt.Fprintf(&b, "   Ref: S/ %s\n", item.Price)
		}
		b.WriteString("\n")
	}
	b.WriteString("_Enviado desde Presupuesto Mix_")

	return b.String()
}

// WhatsAppLink builds the api.whatsapp.com send URL for the given phone
// and message. api.whatsapp.com is used over wa.me for better
// compatibility across devices.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
		url.QueryEscape(phone), url.QueryEscape(message))
}
