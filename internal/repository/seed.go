// Package repository provides the seed dataset and the file-backed stores
// for missing items and cow funds.
package repository

import (
	"math/rand"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

// marketProfile models one local market's typical pricing against the base
// reference price.
type marketProfile struct {
	name       string
	kind       string // wholesale, market, retail, premium
	variance   float64
	dealChance float64
}

var marketProfiles = []marketProfile{
	{"Makro", "wholesale", 0.85, 0.4},
	{"Mercado Mayorista", "market", 0.75, 0.1},
	{"Plaza Vea", "retail", 1.00, 0.3},
	{"Metro", "retail", 0.98, 0.3},
	{"Tottus", "retail", 0.95, 0.4},
	{"Vivanda", "premium", 1.25, 0.15},
	{"Wong", "premium", 1.30, 0.2},
}

// mockMarketPrices synthesizes plausible per-market quotes around a base
// price so the dashboard has comparison data before the first AI fetch.
// Category tweaks mirror where each market type is actually cheap.
func mockMarketPrices(rng *rand.Rand, basePrice float64, category string) []models.MarketPrice {
	out := make([]models.MarketPrice, 0, len(marketProfiles))
	for _, m := range marketProfiles {
		price := basePrice * m.variance

		switch {
		case category == "produce" && m.kind == "market":
			price *= 0.8
		case category == "meat" && m.kind == "wholesale":
			price *= 0.9
		case category == "alcohol" && m.kind == "retail":
			price *= 0.95
		}

		if rng.Float64() < m.dealChance {
			price *= 0.9
		}
		price += rng.Float64()*0.5 - 0.25
		if price < 0 {
			price = 0
		}

		out = append(out, models.MarketPrice{MarketName: m.name, Price: round2(price)})
	}
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// SeedDishes returns the event's dish list. Market prices are mock quotes
// until the first optimization fetch replaces them with AI data.
func SeedDishes() []models.Dish {
	rng := rand.New(rand.NewSource(20260218))
	mp := func(base float64, cat string) []models.MarketPrice {
		return mockMarketPrices(rng, base, cat)
	}

	return []models.Dish{
		{
			ID:   "dish-1",
			Name: "Causa de Pulpa de Cangrejo Centolla Fuente",
			Ingredients: []models.Ingredient{
				{ID: "i1-1", Name: "Papa Amarilla", Quantity: 4, Unit: "Kilos", PriceUnit: 5.00, PriceTotal: 20.00, Observations: "Las chicas ayudan a prensar las papas", MarketPrices: mp(5.00, "produce")},
				{ID: "i1-2", Name: "Aji Amarillo", Quantity: 1, Unit: "Kilos", PriceUnit: 14.00, PriceTotal: 14.00, Observations: "Medio kilo para la causa, medio kilo para la huancaina", MarketPrices: mp(14.00, "produce")},
				{ID: "i1-3", Name: "Limon", Quantity: 1, Unit: "Kilos", PriceUnit: 7.00, PriceTotal: 7.00, MarketPrices: mp(7.00, "produce")},
				{ID: "i1-4", Name: "Palta", Quantity: 1, Unit: "Kilo", PriceUnit: 12.00, PriceTotal: 12.00, MarketPrices: mp(12.00, "produce")},
				{ID: "i1-5", Name: "Pulpa de Cangrejo Centolla", Quantity: 0.5, Unit: "Kilos", PriceUnit: 0, PriceTotal: 0, Observations: "La trae Fernando Calderon", MarketPrices: []models.MarketPrice{}},
				{ID: "i1-6", Name: "Pimientos", Quantity: 2, Unit: "Unid", PriceUnit: 3.00, PriceTotal: 6.00, MarketPrices: mp(3.00, "produce")},
				{ID: "i1-7", Name: "Nuez Moscada", Quantity: 1, Unit: "Unid", PriceUnit: 2.00, PriceTotal: 2.00, MarketPrices: mp(2.00, "dry")},
			},
		},
		{
			ID:   "dish-2",
			Name: "Caja China",
			Ingredients: []models.Ingredient{
				{ID: "i2-1", Name: "Panceta de cerdo con piel y sin hueso", Quantity: 4, Unit: "Kilos", PriceUnit: 43.80, PriceTotal: 175.20, Observations: "Viernes 20% descuento", MarketPrices: mp(43.80, "meat")},
				{ID: "i2-2", Name: "Chorizo Finas Hierbas para Picar", Quantity: 1, Unit: "Kilos", PriceUnit: 32.00, PriceTotal: 32.00, MarketPrices: mp(32.00, "meat")},
				{ID: "i2-3", Name: "Cerveza Negra", Quantity: 1, Unit: "botella", PriceUnit: 7.00, PriceTotal: 7.00, MarketPrices: mp(7.00, "alcohol")},
				{ID: "i2-4", Name: "Pack Tomillo Huacatay Anis Estrella y Hierba Buena", Quantity: 1, Unit: "Pack 300 gr", PriceUnit: 7.00, PriceTotal: 7.00, MarketPrices: mp(7.00, "produce")},
				{ID: "i2-5", Name: "Naranja", Quantity: 1, Unit: "500 gr", PriceUnit: 4.00, PriceTotal: 4.00, MarketPrices: mp(4.00, "produce")},
				{ID: "i2-6", Name: "Sal normal y Sal Gruesa", Quantity: 2, Unit: "Kilos", PriceUnit: 7.00, PriceTotal: 14.00, MarketPrices: mp(7.00, "dry")},
				{ID: "i2-7", Name: "Laurel", Quantity: 1, Unit: "50 gr", PriceUnit: 2.00, PriceTotal: 2.00, MarketPrices: mp(2.00, "dry")},
				{ID: "i2-8", Name: "Pimienta, Comino y Vinagre Balsamico", Quantity: 1, Unit: "250 gr", PriceUnit: 14.00, PriceTotal: 14.00, MarketPrices: mp(14.00, "dry")},
				{ID: "i2-9", Name: "Camote Amarillo", Quantity: 2, Unit: "Kilos", PriceUnit: 3.50, PriceTotal: 7.00, Observations: "Viernes 20% descuento", MarketPrices: mp(3.50, "produce")},
			},
		},
		{
			ID:   "dish-3",
			Name: "Insumos Necesarios",
			Ingredients: []models.Ingredient{
				{ID: "i3-2", Name: "Ajo Toro Chimi Mix con Aceite de Oliva", Quantity: 1, Unit: "Frasco", PriceUnit: 32.00, PriceTotal: 32.00, Observations: "Para sazonar el chancho y comer con chorizos", MarketPrices: mp(32.00, "dry")},
				{ID: "i3-3", Name: "Aceite Primor", Quantity: 1, Unit: "Litro", PriceUnit: 12.00, PriceTotal: 12.00, MarketPrices: mp(12.00, "dry")},
				{ID: "i3-4", Name: "Clavo de Olor", Quantity: 1, Unit: "50 gr", PriceUnit: 2.50, PriceTotal: 2.50, MarketPrices: mp(2.50, "dry")},
				{ID: "i3-5", Name: "Margarina Dorina", Quantity: 1, Unit: "100 gr", PriceUnit: 5.50, PriceTotal: 5.50, MarketPrices: mp(5.50, "dry")},
				{ID: "i3-6", Name: "Miel de Abeja", Quantity: 1, Unit: "200 gr", PriceUnit: 8.00, PriceTotal: 8.00, MarketPrices: mp(8.00, "dry")},
			},
		},
		{
			ID:   "dish-5",
			Name: "Piqueos y Otros",
			Ingredients: []models.Ingredient{
				{ID: "i4-4", Name: "Queso Paria o Huarochiri", Quantity: 1, Unit: "400 gr", PriceUnit: 12.00, PriceTotal: 12.00, Observations: "HuacaMix", MarketPrices: mp(12.00, "other")},
				{ID: "i4-5", Name: "Carbon de preferencia Briketa", Quantity: 1, Unit: "5 Kilos", PriceUnit: 30.00, PriceTotal: 30.00, MarketPrices: mp(30.00, "other")},
				{ID: "i4-6", Name: "Everest", Quantity: 2, Unit: "Litros", PriceUnit: 6.00, PriceTotal: 12.00, Observations: "Bebidas / Agua", MarketPrices: mp(6.00, "alcohol")},
				{ID: "i4-7", Name: "Papel Toalla", Quantity: 2, Unit: "rollos", PriceUnit: 3.00, PriceTotal: 6.00, MarketPrices: mp(3.00, "dry")},
				{ID: "i4-8", Name: "Papa Coctelera", Quantity: 2, Unit: "Kilos", PriceUnit: 6.00, PriceTotal: 12.00, MarketPrices: mp(6.00, "produce")},
			},
		},
	}
}

// SeedParticipants returns the initial guest list.
func SeedParticipants() []models.Participant {
	return []models.Participant{
		{ID: "1", Name: "Pepocho", Type: models.TypeAdult, IsActive: true},
		{ID: "2", Name: "Chiky", Type: models.TypeAdult, IsActive: false},
		{ID: "3", Name: "Thiago", Type: models.TypeChild, IsActive: true},
		{ID: "4", Name: "Facundo", Type: models.TypeChild, IsActive: true},
		{ID: "5", Name: "Feny", Type: models.TypeAdult, IsActive: true},
		{ID: "6", Name: "Lucy Pollito", Type: models.TypeAdult, IsActive: true},
		{ID: "7", Name: "Mikela", Type: models.TypeChild, IsActive: true},
		{ID: "8", Name: "Kyara", Type: models.TypeAdult, IsActive: false},
		{ID: "9", Name: "Enamorado Kyara", Type: models.TypeAdult, IsActive: false},
		{ID: "10", Name: "Fernando Calderon", Type: models.TypeAdult, IsActive: true},
		{ID: "11", Name: "Amiga Fernando", Type: models.TypeAdult, IsActive: true},
		{ID: "12", Name: "Aldo", Type: models.TypeAdult, IsActive: true},
		{ID: "13", Name: "Pilar", Type: models.TypeAdult, IsActive: true},
		{ID: "14", Name: "Gaby la Patrona", Type: models.TypeAdult, IsActive: true},
		{ID: "15", Name: "Momo", Type: models.TypeAdult, IsActive: false},
		{ID: "16", Name: "Chana", Type: models.TypeAdult, IsActive: false},
		{ID: "17", Name: "Valentina", Type: models.TypeChild, IsActive: false},
		{ID: "18", Name: "Francesca", Type: models.TypeChild, IsActive: false},
	}
}

// HistoricPrices is the reference table from the previous event.
func HistoricPrices() map[string]models.HistoricPrice {
	return map[string]models.HistoricPrice{
		"Panceta de cerdo con piel y sin hueso": {Name: "Panceta de cerdo", LastPrice: 38.00, Seasonality: models.SeasonNormal},
		"Limon":         {Name: "Limon", LastPrice: 5.00, Seasonality: models.SeasonExpensive, SeasonalityMsg: "Escasez por lluvias"},
		"Papa Amarilla": {Name: "Papa Amarilla", LastPrice: 5.50, Seasonality: models.SeasonBestTime, SeasonalityMsg: "Cosecha en la sierra"},
		"Bonito":        {Name: "Bonito", LastPrice: 8.00, Seasonality: models.SeasonBestTime, SeasonalityMsg: "Pesca abundante, precio bajo histórico"},
		"Lenguado":      {Name: "Lenguado", LastPrice: 80.00, Seasonality: models.SeasonBanned, SeasonalityMsg: "En veda reproductiva. Prohibido su consumo."},
		"Lomo Fino":     {Name: "Lomo Fino", LastPrice: 55.00, Seasonality: models.SeasonExpensive, SeasonalityMsg: "Subió 15% respecto a la parrilla anterior"},
		"Palta":         {Name: "Palta", LastPrice: 10.00, Seasonality: models.SeasonNormal},
		"Cerveza Negra": {Name: "Cerveza Negra", LastPrice: 6.50, Seasonality: models.SeasonNormal},
	}
}

// SeedFunds returns the initial cow funds, used when the fund store file
// does not exist yet.
func SeedFunds() []models.CowFund {
	return []models.CowFund{
		{
			ID:            "cow-1",
			Name:          "Whisky Blue Label",
			TargetAmount:  850.00,
			CurrentAmount: 150.00,
			Status:        models.FundActive,
			Contributors: []models.Contribution{
				{ID: "c-1", ParticipantID: "1", Name: "Pepocho", Amount: 100.00},
				{ID: "c-2", ParticipantID: "5", Name: "Feny", Amount: 50.00},
			},
		},
	}
}
