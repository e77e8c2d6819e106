package catalog

var defaultProducts = []Product{
	{Name: "iPhone 15 Pro", Price: 999, Category: "smartphone", Specs: "A17 Pro chip, titanium body, 48MP camera, excellent video"},
	{Name: "Samsung Galaxy S24 Ultra", Price: 1199, Category: "smartphone", Specs: "S-Pen, 200MP camera, Snapdragon 8 Gen 3, AI features"},
	{Name: "Google Pixel 8 Pro", Price: 999, Category: "smartphone", Specs: "Best Android camera, Tensor G3, clean software, 7 years updates"},
	{Name: "OnePlus 12", Price: 799, Category: "smartphone", Specs: "Very fast charging, smooth 120Hz display, great performance"},
	{Name: "Nothing Phone (2)", Price: 599, Category: "smartphone", Specs: "Unique glyph LED design, clean software, good price"},
	{Name: "Samsung Galaxy A54", Price: 449, Category: "smartphone", Specs: "Great mid-range, excellent battery, IP67"},
	{Name: "Moto G Power 5G (2024)", Price: 299, Category: "smartphone", Specs: "Huge battery, budget price, wireless charging"},
	{Name: "MacBook Air M3", Price: 1099, Category: "laptop", Specs: "Fanless, incredible battery, sharp Retina display"},
	{Name: "Dell XPS 14", Price: 1499, Category: "laptop", Specs: "Gorgeous OLED display, premium build, great keyboard"},
	{Name: "Lenovo ThinkPad X1 Carbon", Price: 1399, Category: "laptop", Specs: "Business legend, best keyboard, very durable"},
	{Name: "Sony WH-1000XM5", Price: 399, Category: "headphones", Specs: "Industry-leading noise cancelling, 30hr battery"},
	{Name: "AirPods Pro 2", Price: 249, Category: "headphones", Specs: "Best for iPhone users, spatial audio, ANC"},
	{Name: "Anker Soundcore Liberty 4", Price: 129, Category: "headphones", Specs: "Excellent value, good ANC, long battery"},
}

// Default returns the built-in product catalog
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic("catalog: built-in products are invalid: " + err.Error())
	}
	return c
}
