package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"github.com/DoTranTuyen/fullstack-dath/graphql"
	gqlmodels "github.com/DoTranTuyen/fullstack-dath/graphql/models"
	"github.com/DoTranTuyen/fullstack-dath/graphql/registry"
	"github.com/DoTranTuyen/fullstack-dath/graphql/resolvers"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	res *resolvers.Resolver
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{res: r.res}
}

// QueryResolver implements Query fields. Delegates to the resolvers package.
type QueryResolver struct {
	res *resolvers.Resolver
}

// MenuArgs matches the menu query arguments.
type MenuArgs struct {
	CategoryID *int32
}

func (r *QueryResolver) Menu(ctx context.Context, args MenuArgs) ([]*gqlmodels.MenuItem, error) {
	return r.res.Menu(ctx, args.CategoryID)
}

// MenuItemArgs matches the menuItem query arguments.
type MenuItemArgs struct {
	ID int32
}

func (r *QueryResolver) MenuItem(ctx context.Context, args MenuItemArgs) (*gqlmodels.MenuItem, error) {
	return r.res.MenuItem(ctx, args.ID)
}

func (r *QueryResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	return r.res.Categories(ctx)
}

// SearchMenuArgs matches the searchMenu query arguments. Limit is plain
// int32: the schema default (20) is unmarshalled into the field, and
// graphql-go refuses to write a schema default into a pointer.
type SearchMenuArgs struct {
	Query string
	Limit int32
}

func (r *QueryResolver) SearchMenu(ctx context.Context, args SearchMenuArgs) ([]*gqlmodels.MenuItem, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = 20
	}
	return r.res.SearchMenu(ctx, args.Query, limit)
}

// BestSellersArgs matches the bestSellers query arguments (schema default 10).
type BestSellersArgs struct {
	Limit int32
}

func (r *QueryResolver) BestSellers(ctx context.Context, args BestSellersArgs) ([]*gqlmodels.BestSeller, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}
	return r.res.BestSellers(ctx, limit)
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	root := &RootResolver{res: resolvers.NewResolver(db)}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
