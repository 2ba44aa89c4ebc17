// Package domain contains core types for the revenue service.
package domain

// Revenue is one month of aggregated revenue, a read-only reporting row.
type Revenue struct {
	Month   string `gorm:"primaryKey;type:text" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

// TableName sets the database table name.
func (Revenue) TableName() string { return "revenue" }
