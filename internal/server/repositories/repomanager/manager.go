package repomanager

import (
	"context"
	"database/sql"

	"github.com/codebyfaisal/e-store-pos/internal/dbx"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/activities"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/catalog"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/customers"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/invites"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/invoices"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/orders"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/products"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/reports"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/salesreturns"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Invites(db dbx.DBTX) invites.Repository
	Activities(db dbx.DBTX) activities.Repository
	Products(db dbx.DBTX) products.Repository
	Catalog(db dbx.DBTX) catalog.Repository
	Customers(db dbx.DBTX) customers.Repository
	Orders(db dbx.DBTX) orders.Repository
	SalesReturns(db dbx.DBTX) salesreturns.Repository
	Invoices(db dbx.DBTX) invoices.Repository
	Reports(db dbx.DBTX) reports.Repository
}
