package catalog

// Product rows live in the remote store and are read-only here. JSON field
// names follow the storefront contract.
type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	LongDescription  string            `json:"longDescription"`
	Price            int               `json:"price"`
	ImageURL         string            `json:"imageUrl"`
	Images           []string          `json:"images"`
	Ingredients      []string          `json:"ingredients"`
	NutritionalFacts map[string]string `json:"nutritionalFacts"`
	IsGlutenFree     bool              `json:"isGlutenFree"`
	IsOrganic        bool              `json:"isOrganic"`
	Category         string            `json:"category"`
	Reviews          []Review          `json:"reviews"`
}

type Review struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}
