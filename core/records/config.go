package records

// Config holds configuration for the record source.
type Config struct {
	// Source selects the implementation (http, object, database).
	Source string `mapstructure:"source" default:"http"`
	// URL is the CSV export URL used by the http source.
	URL string `mapstructure:"url" default:""`
	// Object is the CSV object key used by the object source.
	Object string `mapstructure:"object" default:"records/products.csv"`
	// Table is the table read by the database source.
	Table string `mapstructure:"table" default:"products"`
	// KeyColumn is the column holding the record name.
	KeyColumn string `mapstructure:"key_column" default:"name"`
	// OrderColumn orders database rows. Row order defines the catalog order.
	OrderColumn string `mapstructure:"order_column" default:"id"`
	// MappingFile is an optional YAML file overriding the default field mapping.
	MappingFile string `mapstructure:"mapping_file" default:""`
	// TimeoutSeconds is the request timeout for the http source.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	SourceHTTP     = "http"
	SourceObject   = "object"
	SourceDatabase = "database"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceHTTP, SourceObject, SourceDatabase:
		return true
	default:
		return false
	}
}
