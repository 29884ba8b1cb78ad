package catalog

import "kids-web-store/internal/models"

// DefaultMenu returns the static menu the store ships with.
// Prices are in cents.
func DefaultMenu() []models.Item {
	return []models.Item{
		{ID: "pizza", Name: "Pizza", Price: 100, Category: models.CategoryJunk, Image: "pizza.jpg", Description: "Delicious cheese pizza"},
		{ID: "fries", Name: "Fries", Price: 100, Category: models.CategoryJunk, Image: "fries.jpg", Description: "Crispy golden fries"},
		{ID: "cookie", Name: "Cookie", Price: 100, Category: models.CategoryJunk, Image: "cookie.jpg", Description: "Sweet chocolate chip cookie"},
		{ID: "hotdog", Name: "Hotdog", Price: 100, Category: models.CategoryJunk, Image: "hotdog.jpg", Description: "Classic hotdog with mustard"},
		{ID: "chocolate", Name: "Chocolate", Price: 100, Category: models.CategoryJunk, Image: "chocolate.jpg", Description: "Rich milk chocolate bar"},
		{ID: "carrot", Name: "Carrot", Price: 200, Category: models.CategoryHealthy, Image: "carrot.jpg", Description: "Fresh organic carrot"},
		{ID: "tomato", Name: "Tomato", Price: 200, Category: models.CategoryHealthy, Image: "tomato.jpg", Description: "Ripe red tomato"},
		{ID: "corn", Name: "Corn", Price: 200, Category: models.CategoryHealthy, Image: "corn.jpg", Description: "Sweet corn on the cob"},
		{ID: "tea", Name: "Tea", Price: 200, Category: models.CategoryHealthy, Image: "tea.jpg", Description: "Healthy herbal tea"},
		{ID: "icecream", Name: "Icecream", Price: 200, Category: models.CategoryJunk, Image: "icecream.jpg", Description: "Vanilla ice cream cone"},
	}
}

// Default builds the catalog from the static menu
func Default() *Catalog {
	c, err := New(DefaultMenu())
	if err != nil {
		// The static menu is compiled in; failing to build it is a bug.
		panic(err)
	}
	return c
}
