package configs

import (
	"github.com/ja-cob-s/cantina/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Address{}, &entity.User{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)

	if err := CreateViews(db); err != nil {
		panic("failed to create aggregate views: " + err.Error())
	}
}

// CreateViews (re)creates the read-only aggregate views the cart, order
// history and dashboard endpoints select from. Dropping first keeps the
// definitions current across upgrades.
func CreateViews(db *gorm.DB) error {
	views := []struct{ name, query string }{
		{"cart_view", `
			SELECT c.user_id AS user_id, c.menu_item_id AS menu_item_id,
			       m.name AS name, m.price AS price, c.quantity AS quantity
			  FROM cart_items c
			  JOIN menu_items m ON m.id = c.menu_item_id
			 WHERE c.deleted_at IS NULL`},
		{"order_view", `
			SELECT oi.order_id AS order_id, oi.menu_item_id AS menu_item_id,
			       m.name AS name, m.price AS price, oi.quantity AS quantity
			  FROM order_items oi
			  JOIN menu_items m ON m.id = oi.menu_item_id
			 WHERE oi.deleted_at IS NULL`},
		{"top_item_view", `
			SELECT oi.menu_item_id AS menu_item_id, m.name AS name,
			       m.description AS description, m.price AS price,
			       SUM(oi.quantity) AS quantity
			  FROM order_items oi
			  JOIN menu_items m ON m.id = oi.menu_item_id
			 WHERE oi.deleted_at IS NULL
			 GROUP BY oi.menu_item_id, m.name, m.description, m.price
			 ORDER BY quantity DESC`},
		{"day_of_week_view", `
			SELECT CASE strftime('%w', o.order_time)
			         WHEN '0' THEN 'Sunday'
			         WHEN '1' THEN 'Monday'
			         WHEN '2' THEN 'Tuesday'
			         WHEN '3' THEN 'Wednesday'
			         WHEN '4' THEN 'Thursday'
			         WHEN '5' THEN 'Friday'
			         ELSE 'Saturday'
			       END AS day_of_week,
			       COUNT(*) AS quantity
			  FROM orders o
			 WHERE o.deleted_at IS NULL
			 GROUP BY day_of_week`},
		{"time_of_day_view", `
			SELECT strftime('%H', o.order_time) AS time_of_day,
			       COUNT(*) AS quantity
			  FROM orders o
			 WHERE o.deleted_at IS NULL
			 GROUP BY time_of_day
			 ORDER BY time_of_day`},
		{"zip_code_view", `
			SELECT a.zip_code AS zip_code, COUNT(*) AS quantity
			  FROM orders o
			  JOIN users u ON u.id = o.user_id
			  JOIN addresses a ON a.id = u.address_id
			 WHERE o.deleted_at IS NULL
			 GROUP BY a.zip_code
			 ORDER BY quantity DESC`},
	}

	for _, v := range views {
		if err := db.Exec("DROP VIEW IF EXISTS " + v.name).Error; err != nil {
			return err
		}
		if err := db.Exec("CREATE VIEW " + v.name + " AS " + v.query).Error; err != nil {
			return err
		}
	}
	return nil
}
