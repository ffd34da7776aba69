package entity

// Read-only rows scanned from the aggregate SQL views created in
// configs.SetupDatabase. The application never writes through these.

type CartLine struct {
	UserID     uint   `json:"userId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

func (CartLine) TableName() string { return "cart_view" }

type OrderLine struct {
	OrderID    uint   `json:"orderId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

func (OrderLine) TableName() string { return "order_view" }

type TopItem struct {
	MenuItemID  uint   `json:"menuItemId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

func (TopItem) TableName() string { return "top_item_view" }

type DayOfWeekCount struct {
	DayOfWeek string `json:"dayOfWeek"`
	Quantity  int    `json:"quantity"`
}

func (DayOfWeekCount) TableName() string { return "day_of_week_view" }

// TimeOfDay is the zero-padded 24h hour ("00".."23"); the dashboard
// reformats it to a 12-hour label.
type TimeOfDayCount struct {
	TimeOfDay string `json:"timeOfDay"`
	Quantity  int    `json:"quantity"`
}

func (TimeOfDayCount) TableName() string { return "time_of_day_view" }

type ZipCodeCount struct {
	ZipCode  string `json:"zipCode"`
	Quantity int    `json:"quantity"`
}

func (ZipCodeCount) TableName() string { return "zip_code_view" }
