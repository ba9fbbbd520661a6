package catalog

// Ingredient units of measure (don_vi_tinh).
const (
	UnitKg     = "kg"
	UnitGram   = "g"
	UnitMl     = "ml"
	UnitLit    = "lit"
	UnitBottle = "chai"
	UnitPack   = "goi"
	UnitBox    = "hop"
	UnitCan    = "lon"
	UnitPiece  = "cai"
	UnitFruit  = "trai"
	UnitLoaf   = "o"
	UnitBulb   = "cu"
)

// Ingredient represents the nguyenlieu table.
// QuantityInStock is a maintained cache owned by the inventory ledger;
// nothing else may write it.
type Ingredient struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"column:ten_nguyen_lieu;type:varchar(100);uniqueIndex;not null" json:"name"`
	Unit            string `gorm:"column:don_vi_tinh;type:varchar(5);not null" json:"unit"`
	QuantityInStock int    `gorm:"column:so_luong_ton;not null;default:0" json:"quantity_in_stock"`
}

func (Ingredient) TableName() string {
	return "nguyenlieu"
}

// RecipeItem represents the congthuc_sanpham table: the quantity of one
// ingredient needed per unit of product.
type RecipeItem struct {
	ID               uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID        uint `gorm:"column:ma_san_pham;index;not null" json:"product_id"`
	IngredientID     uint `gorm:"column:ma_nguyen_lieu;index;not null" json:"ingredient_id"`
	QuantityRequired int  `gorm:"column:so_luong_can;not null" json:"quantity_required"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeItem) TableName() string {
	return "congthuc_sanpham"
}
