package memory

import (
	"time"

	"antigaspi/internal/domain/entity"
)

func ptr(weight float64) *float64 { return &weight }

// seedListings returns the demo catalog the application boots with. The data
// mirrors the published demo content: Algerian surplus food, clothing,
// household goods and solidarity donations.
func seedListings() []entity.Listing {
	seededAt := time.Now()

	return []entity.Listing{
		{
			ID:          1,
			Name:        "Couscous traditionnel fait maison",
			Description: "Couscous aux légumes et viande d'agneau, préparé avec amour selon la recette de ma grand-mère. Parfait pour 4-6 personnes.",
			Price:       "800 DA",
			Location:    "Alger Centre",
			Owner:       "Fatima Benaissa",
			ImageURL:    "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-31",
			Category:    "Plats préparés",
			Condition:   "Excellent",
			Weight:      ptr(2.5),
			CreatedAt:   seededAt,
		},
		{
			ID:          2,
			Name:        "Tajine de poulet aux olives",
			Description: "Délicieux tajine de poulet mijoté aux olives et citrons confits. Prêt à réchauffer et déguster.",
			Price:       "1200 DA",
			Location:    "Oran",
			Owner:       "Amina Cherif",
			ImageURL:    "https://images.unsplash.com/photo-1574484284002-952d92456975?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-30",
			Category:    "Plats préparés",
			Condition:   "Très bon",
			Weight:      ptr(1.8),
			CreatedAt:   seededAt,
		},
		{
			ID:          4,
			Name:        "Fruits de saison bio",
			Description: "Mélange de fruits frais de saison : pommes, poires, oranges. Parfait pour une alimentation saine.",
			Price:       "800 DA",
			Location:    "Blida",
			Owner:       "Ferme Bio Karim",
			ImageURL:    "https://images.unsplash.com/photo-1610832958506-aa56368176cf?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-28",
			Category:    "Matières premières",
			Condition:   "Excellent",
			FlashOffer:  true,
			Weight:      ptr(3),
			CreatedAt:   seededAt,
		},
		{
			ID:          6,
			Name:        "Épices traditionnelles",
			Description: "Mélange d'épices algériennes authentiques : ras el hanout, harissa, zaatar.",
			Price:       "1200 DA",
			Location:    "Béjaïa",
			Owner:       "Épicerie du Terroir",
			ImageURL:    "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-06-26",
			Category:    "Matières premières",
			Condition:   "Neuf",
			CreatedAt:   seededAt,
		},
		{
			ID:          7,
			Name:        "Baklava aux amandes",
			Description: "Délicieux baklava croustillant aux amandes et miel, préparé selon la tradition orientale.",
			Price:       "2000 DA",
			Location:    "Annaba",
			Owner:       "Pâtisserie Orientale",
			ImageURL:    "https://images.unsplash.com/photo-1571115764595-644a1f56a55c?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-01-05",
			Category:    "Pâtisseries",
			Condition:   "Excellent",
			Weight:      ptr(1.2),
			CreatedAt:   seededAt,
		},
		{
			ID:          10,
			Name:        "Robe traditionnelle Karakou",
			Description: "Magnifique robe traditionnelle algéroise brodée à la main, portée une seule fois.",
			Price:       "15000 DA",
			Location:    "Alger",
			Owner:       "Leila Boutique",
			ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-06-30",
			Category:    "Vêtements",
			Condition:   "Comme neuf",
			CreatedAt:   seededAt,
		},
		{
			ID:          12,
			Name:        "Lot de vêtements enfants",
			Description: "Collection de vêtements pour enfants de 3-5 ans, très bon état, marques de qualité.",
			Price:       "0 DA",
			Location:    "Constantine",
			Owner:       "Maman Solidaire",
			ImageURL:    "https://images.unsplash.com/photo-1622290291468-a28f7a7dc6a9?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-31",
			Category:    "Dons solidaires",
			Condition:   "Bon",
			IsDonation:  true,
			CreatedAt:   seededAt,
		},
		{
			ID:          13,
			Name:        "Service à thé en porcelaine",
			Description: "Élégant service à thé en porcelaine fine avec motifs dorés, parfait pour les invités.",
			Price:       "5000 DA",
			Location:    "Tlemcen",
			Owner:       "Antiquités du Maghreb",
			ImageURL:    "https://images.unsplash.com/photo-1563453392212-326f5e854473?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-31",
			Category:    "Vaisselles",
			Condition:   "Excellent",
			CreatedAt:   seededAt,
		},
		{
			ID:          16,
			Name:        "Huile d'argan pure du Maroc",
			Description: "Huile d'argan 100% naturelle, excellente pour la peau et les cheveux. Bouteille 100ml.",
			Price:       "2200 DA",
			Location:    "Alger",
			Owner:       "Beauté Naturelle",
			ImageURL:    "https://images.unsplash.com/photo-1570554886111-e80fcca6a029?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-08-30",
			Category:    "Cosmétiques",
			Condition:   "Neuf",
			CreatedAt:   seededAt,
		},
		{
			ID:          20,
			Name:        "Manuels scolaires lycée",
			Description: "Collection complète de manuels pour terminale scientifique, programme algérien actuel.",
			Price:       "0 DA",
			Location:    "Constantine",
			Owner:       "Association Éducative",
			ImageURL:    "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-31",
			Category:    "Dons solidaires",
			Condition:   "Bon",
			IsDonation:  true,
			Weight:      ptr(6),
			CreatedAt:   seededAt,
		},
		{
			ID:          23,
			Name:        "Miel naturel de montagne",
			Description: "Miel pur récolté dans les montagnes de l'Atlas, goût authentique et bienfaits naturels.",
			Price:       "2800 DA",
			Location:    "Blida",
			Owner:       "Apiculture Atlas",
			ImageURL:    "https://images.unsplash.com/photo-1558642452-9d2a7deb7f62?w=400&h=300&fit=crop",
			ExpiryDate:  "2026-12-31",
			Category:    "Matières premières",
			Condition:   "Excellent",
			Weight:      ptr(0.5),
			CreatedAt:   seededAt,
		},
		{
			ID:          24,
			Name:        "Couvertures en laine",
			Description: "Couvertures traditionnelles en laine pure, parfaites pour l'hiver. Lot de 3 pièces.",
			Price:       "0 DA",
			Location:    "Constantine",
			Owner:       "Association Solidarité",
			ImageURL:    "https://images.unsplash.com/photo-1584100936595-c0654b55a2e2?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-12-31",
			Category:    "Dons solidaires",
			Condition:   "Très bon",
			IsDonation:  true,
			Weight:      ptr(4.5),
			CreatedAt:   seededAt,
		},
		{
			ID:          27,
			Name:        "Plantes aromatiques en pot",
			Description: "Collection de plantes aromatiques : menthe, basilic, persil, coriandre en pots recyclés.",
			Price:       "400 DA",
			Location:    "Sétif",
			Owner:       "Jardin Écologique",
			ImageURL:    "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400&h=300&fit=crop",
			ExpiryDate:  "2025-01-15",
			Category:    "Matières premières",
			Condition:   "Excellent",
			FlashOffer:  true,
			CreatedAt:   seededAt,
		},
	}
}

// seedReviews returns the demo reviews shown on the first listing.
func seedReviews() []entity.Review {
	return []entity.Review{
		{
			ListingID:  1,
			AuthorName: "Sarah Benali",
			AvatarURL:  "https://images.unsplash.com/photo-1494790108755-2616b612b1e1?w=100&h=100&fit=crop&crop=face",
			Rating:     5,
			Comment:    "Excellent produit, très frais et de qualité. Le vendeur était très sympa !",
			Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Helpful:    8,
			Verified:   true,
		},
		{
			ListingID:  1,
			AuthorName: "Ahmed Khelil",
			AvatarURL:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Rating:     4,
			Comment:    "Bon rapport qualité-prix. Récupéré rapidement.",
			Date:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Helpful:    3,
		},
	}
}
