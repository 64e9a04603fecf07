package controllers

import (
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	gql "github.com/shashiranjanraj/kashvi-admin/pkg/graphql"
)

// GraphQLController exposes a read-only query API over the catalog and
// dashboard, letting console widgets fetch exactly the fields they render.
type GraphQLController struct {
	handler http.HandlerFunc
}

func NewGraphQLController(
	dashboard *services.DashboardService,
	idols *services.IdolService,
	categories *services.CategoryService,
	orders *services.OrderService,
) (*GraphQLController, error) {
	schema, err := buildSchema(dashboard, idols, categories, orders)
	if err != nil {
		return nil, fmt.Errorf("graphql schema: %w", err)
	}
	return &GraphQLController{handler: gql.Handler(schema)}, nil
}

// Query handles POST /api/graphql.
func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	c.handler(w, r)
}

func buildSchema(
	dashboard *services.DashboardService,
	idols *services.IdolService,
	categories *services.CategoryService,
	orders *services.OrderService,
) (graphql.Schema, error) {
	statsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DashboardStats",
		Fields: graphql.Fields{
			"totalSales":      &graphql.Field{Type: graphql.Float},
			"totalOrders":     &graphql.Field{Type: graphql.Int},
			"totalOrderItems": &graphql.Field{Type: graphql.Int},
			"inventoryCount":  &graphql.Field{Type: graphql.Int},
			// The REST payload nests these counts; here they are flat ints.
			"productsCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if stats, ok := p.Source.(models.DashboardStats); ok {
						return stats.ProductsCount.ProductsCount, nil
					}
					return nil, nil
				},
			},
			"usersCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if stats, ok := p.Source.(models.DashboardStats); ok {
						return stats.UsersCount.Count, nil
					}
					return nil, nil
				},
			},
		},
	})

	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	idolType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Idol",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"title":       &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"size":        &graphql.Field{Type: graphql.Float},
			"price":       &graphql.Field{Type: graphql.Float},
			"stock":       &graphql.Field{Type: graphql.Int},
			"thumbnail":   &graphql.Field{Type: graphql.String},
			"category":    &graphql.Field{Type: categoryType},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"dashboard": &graphql.Field{
				Type: statsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return dashboard.Stats(p.Context)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categories.All(p.Context)
				},
			},
			"idols": &graphql.Field{
				Type: graphql.NewList(idolType),
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if cid, ok := p.Args["categoryId"].(int); ok && cid > 0 {
						return idols.ByCategory(p.Context, uint(cid))
					}
					return idols.All(p.Context)
				},
			},
			"idol": &graphql.Field{
				Type: idolType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					return idols.Find(p.Context, uint(id))
				},
			},
			"orderStatuses": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					statuses := orders.Statuses(p.Context)
					out := make([]string, len(statuses))
					for i, s := range statuses {
						out[i] = string(s)
					}
					return out, nil
				},
			},
		},
	})

	return gql.NewSchema(query)
}
