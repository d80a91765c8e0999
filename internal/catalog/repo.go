package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

const productCols = `id, name, description, long_description, price, image_url,
	images, ingredients, nutritional_facts, is_gluten_free, is_organic, category, reviews`

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.LongDescription, &p.Price,
			&p.ImageURL, &p.Images, &p.Ingredients, &p.NutritionalFacts,
			&p.IsGlutenFree, &p.IsOrganic, &p.Category, &p.Reviews); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProduct(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.LongDescription, &p.Price,
			&p.ImageURL, &p.Images, &p.Ingredients, &p.NutritionalFacts,
			&p.IsGlutenFree, &p.IsOrganic, &p.Category, &p.Reviews)
	return p, err
}

func (r *Repo) ListPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, title, author, date, image_url, excerpt, content
	                              FROM blog_posts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BlogPost
	for rows.Next() {
		var b BlogPost
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Date, &b.ImageURL, &b.Excerpt, &b.Content); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) GetPost(ctx context.Context, id string) (BlogPost, error) {
	var b BlogPost
	err := r.DB.QueryRow(ctx, `SELECT id, title, author, date, image_url, excerpt, content
	                           FROM blog_posts WHERE id=$1`, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Date, &b.ImageURL, &b.Excerpt, &b.Content)
	return b, err
}
