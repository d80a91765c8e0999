package catalog

// Bundled sample data served when the remote store is unreachable or empty.
// It is never written back to the store and never expires.

var fallbackReviews = []Review{
	{ID: 1, Author: "Amina S.", Date: "2023-08-15", Rating: 5, Comment: "Absolutely delicious! The best Jollof Spaghetti I have ever had in Abuja."},
	{ID: 2, Author: "David O.", Date: "2023-08-12", Rating: 4, Comment: "Great flavor and very fresh ingredients. Will order again."},
	{ID: 3, Author: "Chioma N.", Date: "2023-08-10", Rating: 5, Comment: "The gluten-free option is fantastic! Tastes so good."},
	{ID: 4, Author: "Femi A.", Date: "2023-08-09", Rating: 5, Comment: "Quick delivery and the pasta was still hot. Excellent service!"},
}

var fallbackProducts = []Product{
	{
		ID:              "chicken-stir-fried-pasta",
		Name:            "Chicken Stir-Fried Pasta",
		Description:     "Tender chicken pieces stir-fried with perfectly cooked pasta in our signature sauce.",
		LongDescription: "Our Chicken Stir-Fried Pasta combines succulent pieces of seasoned chicken with al dente pasta, stir-fried to perfection in our house special sauce. This dish brings together the best of both worlds - the comfort of pasta with the bold flavors of Nigerian stir-fry cooking techniques.",
		Price:           5000,
		ImageURL:        "/images/dishes/chicken-stir-fried-pasta.jpeg",
		Images:          []string{"/images/dishes/chicken-stir-fried-pasta.jpeg"},
		Ingredients:     []string{"Pasta", "Chicken", "Onions", "Bell Peppers", "Garlic", "Ginger", "Soy Sauce", "Vegetable Oil"},
		NutritionalFacts: map[string]string{
			"Calories": "680", "Protein": "35g", "Fat": "28g", "Carbs": "65g",
		},
		Category: "Pasta",
		Reviews:  fallbackReviews,
	},
	{
		ID:              "chicken-dodo-stir-fried-pasta",
		Name:            "Chicken & Dodo Stir-Fried Pasta",
		Description:     "A delightful fusion of chicken, sweet plantains (dodo), and pasta in a savory stir-fry.",
		LongDescription: "Experience the perfect harmony of flavors with our Chicken & Dodo Stir-Fried Pasta. Sweet, caramelized plantains complement tender chicken pieces and pasta, creating a uniquely Nigerian fusion dish that celebrates local ingredients in a contemporary style.",
		Price:           5500,
		ImageURL:        "/images/dishes/chicken-dodo-stir-fried-pasta.jpeg",
		Images:          []string{"/images/dishes/chicken-dodo-stir-fried-pasta.jpeg"},
		Ingredients:     []string{"Pasta", "Chicken", "Plantains (Dodo)", "Onions", "Bell Peppers", "Tomatoes", "Seasoning"},
		NutritionalFacts: map[string]string{
			"Calories": "720", "Protein": "32g", "Fat": "30g", "Carbs": "78g",
		},
		Category: "Pasta",
		Reviews:  fallbackReviews[:2],
	},
	{
		ID:              "jollof-rice-chicken",
		Name:            "Jollof Rice & Chicken",
		Description:     "The classic Nigerian favorite - perfectly spiced Jollof rice served with tender chicken.",
		LongDescription: "Our signature Jollof Rice is cooked to perfection with the right blend of tomatoes, peppers, and spices that give it that authentic Nigerian taste. Served with succulent, well-seasoned chicken, this dish represents the heart of Nigerian cuisine.",
		Price:           3500,
		ImageURL:        "https://images.pexels.com/photos/14602193/pexels-photo-14602193.jpeg",
		Images:          []string{"https://images.pexels.com/photos/14602193/pexels-photo-14602193.jpeg"},
		Ingredients:     []string{"Rice", "Chicken", "Tomatoes", "Peppers", "Onions", "Garlic", "Ginger", "Nigerian Spices", "Stock"},
		NutritionalFacts: map[string]string{
			"Calories": "650", "Protein": "35g", "Fat": "25g", "Carbs": "75g",
		},
		Category: "Rice",
		Reviews:  fallbackReviews[2:3],
	},
	{
		ID:              "fried-dodo-egg-sauce",
		Name:            "Fried Dodo with Egg Sauce",
		Description:     "Sweet fried plantains served with our signature egg sauce - a local favorite.",
		LongDescription: "A beloved Nigerian comfort food combination - perfectly fried sweet plantains (dodo) served with our rich, flavorful egg sauce. This dish is simple yet satisfying, offering the perfect balance of sweet and savory flavors that Nigerians have loved for generations.",
		Price:           3000,
		ImageURL:        "https://images.pexels.com/photos/2664216/pexels-photo-2664216.jpeg",
		Images:          []string{"https://images.pexels.com/photos/2664216/pexels-photo-2664216.jpeg"},
		Ingredients:     []string{"Plantains (Dodo)", "Eggs", "Tomatoes", "Peppers", "Onions", "Palm Oil", "Seasoning"},
		NutritionalFacts: map[string]string{
			"Calories": "450", "Protein": "15g", "Fat": "25g", "Carbs": "45g",
		},
		IsOrganic: true,
		Category:  "Sides",
		Reviews:   fallbackReviews,
	},
}

var fallbackPosts = []BlogPost{
	{
		ID:       "the-art-of-making-fresh-pasta",
		Title:    "The Art of Making Fresh Pasta",
		Author:   "Reggie Okoro",
		Date:     "August 18, 2023",
		ImageURL: "https://images.pexels.com/photos/3220617/pexels-photo-3220617.jpeg",
		Excerpt:  "Discover the simple joys of making pasta from scratch. In this post, we walk you through the traditional methods and share our secret recipe...",
		Content: `<h2>The Foundation: Flour and Eggs</h2>
<p>The heart of any great pasta is its ingredients. We believe in simplicity and quality. That's why our classic recipe uses just two: "00" flour and fresh, free-range eggs. The fine milling of "00" flour creates a silky, tender dough, while the rich yolks of the eggs lend color and flavor.</p>
<h2>Kneading: A Labor of Love</h2>
<p>Kneading isn't just a step; it's a connection to the food. For 10-15 minutes, work the dough until it's smooth and elastic. This develops the gluten structure, which is crucial for that perfect 'al dente' bite.</p>
<h2>Resting and Rolling</h2>
<p>Patience is a virtue, especially in pasta making. Letting the dough rest for at least 30 minutes allows the gluten to relax, making it easier to roll into a thin, even sheet of golden dough, ready to be cut into your favorite shapes.</p>`,
	},
	{
		ID:       "a-guide-to-perfect-pasta-pairings",
		Title:    "A Guide to Perfect Pasta Pairings",
		Author:   "Aisha Bello",
		Date:     "July 25, 2023",
		ImageURL: "https://images.pexels.com/photos/1438672/pexels-photo-1438672.jpeg",
		Excerpt:  "Not all sauces are created equal, and neither are pasta shapes. Learn how to pair them like a Nigerian mama for the ultimate dining experience.",
		Content: `<h2>Light Sauces, Delicate Pasta</h2>
<p>For thin, delicate pasta shapes like Angel Hair or Capellini, you want a sauce that won't overwhelm them. Think light tomato sauces, olive oil-based sauces, or simple pesto. The goal is to coat, not to drown.</p>
<h2>Hearty Sauces, Robust Shapes</h2>
<p>Chunky, meaty sauces like a classic Bolognese need a pasta that can hold its own. Shapes with ridges and hollows, like Rigatoni, Penne, or Shells, are perfect for trapping all that deliciousness.</p>
<h2>Creamy Sauces, Broad Noodles</h2>
<p>Rich, creamy sauces like Alfredo or Carbonara cling beautifully to long, flat noodles. Fettuccine, Pappardelle, and Tagliatelle provide the perfect surface area for these decadent sauces.</p>`,
	},
	{
		ID:       "our-commitment-to-local-ingredients",
		Title:    "Our Commitment to Local Ingredients",
		Author:   "Reggie Okoro",
		Date:     "June 12, 2023",
		ImageURL: "https://images.pexels.com/photos/2255935/pexels-photo-2255935.jpeg",
		Excerpt:  `At Reggie's, "fresh" isn't just a word - it's a promise. We partner with local farms in and around Abuja to bring you the best flavors Nigeria has to offer.`,
		Content: `<h2>From Farm to Plate</h2>
<p>We believe that the best dishes start with the best ingredients. That's why we've built strong relationships with local farmers and producers. Our tomatoes are sourced from farms in Jos, our herbs are grown in local gardens, and our eggs come from free-range chickens right here in the community.</p>
<h2>Supporting Our Community</h2>
<p>Sourcing locally does more than just guarantee freshness; it supports our local economy and reduces our carbon footprint. By choosing Reggie's, you're supporting a network of local artisans and farmers who are passionate about quality.</p>`,
	},
}

// FallbackProducts returns a copy of the bundled product set.
func FallbackProducts() []Product {
	out := make([]Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}

// FallbackPosts returns a copy of the bundled blog set.
func FallbackPosts() []BlogPost {
	out := make([]BlogPost, len(fallbackPosts))
	copy(out, fallbackPosts)
	return out
}
