package design

// Config holds configuration for the design service.
type Config struct {
	// BaseURL is the root URL of the design service API.
	BaseURL string `mapstructure:"base_url" default:"https://api.figma.com"`
	// Token is the personal access token sent with every request.
	Token string `mapstructure:"token" default:""`
	// FileKey identifies the design file holding the catalog.
	FileKey string `mapstructure:"file_key" default:""`
	// Page restricts frame extraction to one page. Empty scans the whole document.
	Page string `mapstructure:"page" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
