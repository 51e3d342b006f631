package entity

// Storage keys for the terminal's durable session state. Both are written on
// every committed cart mutation and read once at startup.
const (
	StorageKeyCart   = "cartItems"
	StorageKeyEdited = "editedProducts"
)

// StorageEntry is one row of the terminal's durable key-value store.
type StorageEntry struct {
	Key   string `gorm:"size:100;primary_key" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName returns the table name for the StorageEntry model
func (StorageEntry) TableName() string {
	return "storage_entries"
}
