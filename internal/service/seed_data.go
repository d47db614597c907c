package service

import "github.com/milsabores/bakery-api/internal/domain"

// initialProducts is the starting catalog, inserted only when the products
// table is empty.
var initialProducts = []domain.Product{
	{
		Code:        "TC001",
		Name:        "Torta Cuadrada de Chocolate",
		Category:    "Tortas Cuadradas",
		PriceCLP:    45000,
		Description: "Deliciosa torta de chocolate con capas de ganache y un toque de avellanas. Personalizable con mensajes especiales.",
		Image:       "/products/TortaCuadradaDeChocolate.webp",
		Featured:    true,
	},
	{
		Code:        "TC002",
		Name:        "Torta Cuadrada de Frutas",
		Category:    "Tortas Cuadradas",
		PriceCLP:    50000,
		Description: "Una mezcla de frutas frescas y crema chantilly sobre un suave bizcocho de vainilla, ideal para celebraciones.",
		Image:       "/products/TortaCuadradaDeFrutas.webp",
	},
	{
		Code:        "TT001",
		Name:        "Torta Circular de Vainilla",
		Category:    "Tortas Circulares",
		PriceCLP:    40000,
		Description: "Bizcocho de vainilla clásico relleno con crema pastelera y cubierto con un glaseado dulce.",
		Image:       "/products/TortaCircularDeVainilla.webp",
		Featured:    true,
	},
	{
		Code:        "TT002",
		Name:        "Torta Circular de Manjar",
		Category:    "Tortas Circulares",
		PriceCLP:    42000,
		Description: "Torta tradicional chilena con manjar y nueces, un deleite para los amantes de los sabores dulces y clásicos.",
		Image:       "/products/TortaCircularDeManjar.webp",
	},
	{
		Code:        "PI001",
		Name:        "Mousse de Chocolate",
		Category:    "Postres Individuales",
		PriceCLP:    5000,
		Description: "Postre individual cremoso y suave, hecho con chocolate de alta calidad, ideal para los amantes del chocolate.",
		Image:       "/products/MousseDeChocolate.webp",
		Featured:    true,
	},
	{
		Code:        "PI002",
		Name:        "Tiramisú Clásico",
		Category:    "Postres Individuales",
		PriceCLP:    5500,
		Description: "Un postre italiano individual con capas de café, mascarpone y cacao, perfecto para finalizar cualquier comida.",
		Image:       "/products/TiramisuClasico.webp",
	},
	{
		Code:        "PSA001",
		Name:        "Torta Sin Azúcar de Naranja",
		Category:    "Productos Sin Azúcar",
		PriceCLP:    48000,
		Description: "Torta ligera y deliciosa, endulzada naturalmente, ideal para quienes buscan opciones más saludables.",
		Image:       "/products/TortaSinAzucarDeNaranja.webp",
	},
	{
		Code:        "PSA002",
		Name:        "Cheesecake Sin Azúcar",
		Category:    "Productos Sin Azúcar",
		PriceCLP:    47000,
		Description: "Suave y cremoso, este cheesecake es una opción perfecta para disfrutar sin culpa.",
		Image:       "/products/CheesecakeSinAzucar.webp",
	},
	{
		Code:        "PT001",
		Name:        "Empanada de Manzana",
		Category:    "Pastelería Tradicional",
		PriceCLP:    3000,
		Description: "Pastelería tradicional rellena de manzanas especiadas, perfecta para un dulce desayuno o merienda.",
		Image:       "/products/EmpanadaDeManzana.webp",
	},
	{
		Code:        "PT002",
		Name:        "Tarta de Santiago",
		Category:    "Pastelería Tradicional",
		PriceCLP:    6000,
		Description: "Tradicional tarta española hecha con almendras, azúcar, y huevos, una delicia para los amantes de los postres clásicos.",
		Image:       "/products/TartaDeSantiago.webp",
	},
	{
		Code:        "PG001",
		Name:        "Brownie Sin Gluten",
		Category:    "Productos Sin Gluten",
		PriceCLP:    4000,
		Description: "Rico y denso, este brownie es perfecto para quienes necesitan evitar el gluten sin sacrificar el sabor.",
		Image:       "/products/BrownieSinGluten.webp",
	},
	{
		Code:        "PG002",
		Name:        "Pan Sin Gluten",
		Category:    "Productos Sin Gluten",
		PriceCLP:    3500,
		Description: "Suave y esponjoso, ideal para sándwiches o para acompañar cualquier comida.",
		Image:       "/products/PanSinGluten.webp",
	},
	{
		Code:        "PV001",
		Name:        "Torta Vegana de Chocolate",
		Category:    "Productos Vegana",
		PriceCLP:    50000,
		Description: "Torta de chocolate húmeda y deliciosa, hecha sin productos de origen animal, perfecta para veganos.",
		Image:       "/products/TortaVeganaDeChocolate.webp",
	},
	{
		Code:        "PV002",
		Name:        "Galletas Veganas de Avena",
		Category:    "Productos Vegana",
		PriceCLP:    4500,
		Description: "Crujientes y sabrosas, estas galletas son una excelente opción para un snack saludable y vegano.",
		Image:       "/products/GalletasVeganasDeAvena.webp",
	},
	{
		Code:        "TE001",
		Name:        "Torta Especial de Cumpleaños",
		Category:    "Tortas Especiales",
		PriceCLP:    55000,
		Description: "Diseñada especialmente para celebraciones, personalizable con decoraciones y mensajes únicos.",
		Image:       "/products/TortaEspecialDeCumpleanos.webp",
		Featured:    true,
	},
	{
		Code:        "TE002",
		Name:        "Torta Especial de Boda",
		Category:    "Tortas Especiales",
		PriceCLP:    60000,
		Description: "Elegante y deliciosa, esta torta está diseñada para ser el centro de atención en cualquier boda.",
		Image:       "/products/TortaEspecialDeBoda.webp",
	},
}

// demoUser is a seeded demo account.
type demoUser struct {
	Name      string
	Email     string
	Password  string
	Birthdate string
}

// demoUsers are the demo accounts guaranteed to exist after seeding.
var demoUsers = []demoUser{
	{Name: "Michael Rodríguez", Email: "mayor@gmail.com", Password: "password123", Birthdate: "1960-05-15"},
	{Name: "Diego Muñoz", Email: "estudiante@duoc.cl", Password: "password123", Birthdate: "2002-08-22"},
	{Name: "Carmen Jiménez", Email: "usuario@gmail.com", Password: "password123", Birthdate: "1990-12-10"},
}
