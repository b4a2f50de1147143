package ai

import (
	"fmt"
	"strings"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

func buildOptimizePrompt(dishes []models.Dish) string {
	var list strings.Builder
	for _, d := range dishes {
		for _, ing := range d.Ingredients {
			fmt.Fprintf(&list, "%s (%g %s) - Base: S/ %.2f\n", ing.Name, ing.Quantity, ing.Unit, ing.PriceUnit)
		}
	}

	return `Actúa como un experto en compras de mercado en Lima, Perú.
Tengo la siguiente lista de ingredientes con sus precios base referenciales:

` + list.String() + `
Para CADA ingrediente, dame 3 opciones de precios reales o estimados en
mercados de Lima (ej. Metro, Mercado Central, Vivanda, Mayorista) que
permitan ahorrar o que sean precios de mercado competitivos hoy.

Devuelve SOLO el objeto JSON puro y válido. No uses bloques de código.
Estructura esperada:
{
  "optimizations": [
    {
      "ingredientName": "string",
      "marketPrices": [
        { "marketName": "string", "price": 0.00 }
      ]
    }
  ]
}
NO inventes ingredientes nuevos. Usa los nombres exactos que te di.
Asegúrate de que los precios tengan sentido económico en Soles Peruanos (PEN).`
}

func buildMenuPrompt(req MenuRequest) string {
	style := req.Style
	if style == "" {
		style = "parrilla criolla"
	}

	return fmt.Sprintf(`Actúa como un chef peruano planificando un evento.
Diseña un menú estilo "%s" para %d personas con un presupuesto máximo de
S/ %.2f. La suma de los costos de los ingredientes debe acercarse al
presupuesto SIN excederlo.

Devuelve SOLO el objeto JSON puro y válido. No uses bloques de código.
Estructura esperada:
{
  "dishes": [
    {
      "name": "string",
      "ingredients": [
        {
          "name": "string",
          "quantity": 0.0,
          "unit": "string",
          "priceUnit": 0.00
        }
      ]
    }
  ]
}
Usa precios realistas de mercados de Lima en Soles Peruanos (PEN).`, style, req.PeopleCount, req.Budget)
}

func buildVoicePrompt(transcript string) string {
	return `Eres un motor de extracción de datos para una lista de compras.
Convierte la transcripción de voz en JSON ESTRICTO.

Reglas:
- La salida DEBE ser JSON válido, empezar con { y terminar con }.
- SOLO JSON, sin explicaciones, sin markdown, sin comentarios.
- Las cantidades en palabras ("dos", "media docena") se normalizan a números.
- Si falta la cantidad, usa 1.
- Si no se menciona quién pide, usa "Voz".

Estructura esperada:
{
  "items": [
    { "name": "string", "quantity": 0, "requester": "string" }
  ]
}

Si no entiendes nada, devuelve exactamente: {"items": []}

TRANSCRIPCIÓN:
` + transcript
}
