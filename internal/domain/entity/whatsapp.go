package entity

import (
	"net/url"
	"strings"
)

// WhatsAppLink construye el enlace wa.me de consulta por un producto.
// El número se sanea de espacios, guiones y paréntesis antes de armar la URL.
func WhatsAppLink(whatsappNumber, productName string) string {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(whatsappNumber)
	message := "Bonjour je veux plus d'information sur " + productName
	return "https://wa.me/" + clean + "?text=" + url.QueryEscape(message)
}
