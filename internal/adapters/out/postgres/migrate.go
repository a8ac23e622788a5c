package postgres

import (
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/auditrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/courierrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/eventrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/locationrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/parcelrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/tokenrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table this service owns, plus the
// partial indexes the gorm tags cannot express.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&courierrepo.CourierDTO{},
		&tokenrepo.DeliveryTokenDTO{},
		&locationrepo.CourierLocationDTO{},
		&eventrepo.EventDTO{},
		&orderrepo.OrderDTO{},
		&auditrepo.AuditLogDTO{},
	)
	if err != nil {
		return err
	}

	return tokenrepo.EnsureIndexes(db)
}
