package server

import (
	"encoding/json"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/pkg/graphql"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

// leadType exposes only the public catalog fields. Contact data is never
// reachable through GraphQL; it is sold through orders.
var leadType = gql.NewObject(gql.ObjectConfig{
	Name: "Lead",
	Fields: gql.Fields{
		"id":          &gql.Field{Type: gql.String},
		"firstName":   &gql.Field{Type: gql.String},
		"lastName":    &gql.Field{Type: gql.String},
		"jobTitle":    &gql.Field{Type: gql.String},
		"websiteName": &gql.Field{Type: gql.String},
		"industry":    &gql.Field{Type: gql.String},
		"location":    &gql.Field{Type: gql.String},
		"price":       &gql.Field{Type: gql.Float},
	},
})

func rootQuery(leads *repositories.LeadRepository) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: "RootQuery",
		Fields: gql.Fields{
			"leads": &gql.Field{
				Type: gql.NewList(leadType),
				Args: gql.FieldConfigArgument{
					"industry": &gql.ArgumentConfig{Type: gql.String},
					"search":   &gql.ArgumentConfig{Type: gql.String},
					"page":     &gql.ArgumentConfig{Type: gql.Int, DefaultValue: 1},
					"limit":    &gql.ArgumentConfig{Type: gql.Int, DefaultValue: 20},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					industry, _ := p.Args["industry"].(string)
					search, _ := p.Args["search"].(string)
					page, _ := p.Args["page"].(int)
					limit, _ := p.Args["limit"].(int)

					items, _, err := leads.Available(p.Context, industry, search, page, limit)
					if err != nil {
						return nil, err
					}

					out := make([]map[string]interface{}, len(items))
					for i, l := range items {
						out[i] = map[string]interface{}{
							"id":          l.ID.Hex(),
							"firstName":   l.FirstName,
							"lastName":    l.LastName,
							"jobTitle":    l.JobTitle,
							"websiteName": l.WebsiteName,
							"industry":    l.Industry,
							"location":    l.Location,
							"price":       l.Price,
						}
					}
					return out, nil
				},
			},
			"lead": &gql.Field{
				Type: leadType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					l, err := leads.FindByID(p.Context, id)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{
						"id":          l.ID.Hex(),
						"firstName":   l.FirstName,
						"lastName":    l.LastName,
						"jobTitle":    l.JobTitle,
						"websiteName": l.WebsiteName,
						"industry":    l.Industry,
						"location":    l.Location,
						"price":       l.Price,
					}, nil
				},
			},
		},
	})
}

// graphqlHandler serves the read-only catalog query endpoint.
func graphqlHandler() http.HandlerFunc {
	schema, err := graphql.NewSchema(rootQuery(repositories.NewLeadRepository()))
	if err != nil {
		logger.Error("server: build graphql schema", "error", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid GraphQL request")
			return
		}

		result := gql.Do(gql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result) //nolint:errcheck
	}
}
